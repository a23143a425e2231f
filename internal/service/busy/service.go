package busy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

// Service собирает занятые интервалы для расчета доступности
type Service struct {
	reservationRepo ReservationRepository
	blockedRepo     BlockedRepository
}

// NewService создает новый экземпляр сервиса занятых интервалов
func NewService(reservationRepo ReservationRepository, blockedRepo BlockedRepository) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
	}
}

// Load возвращает блокировки филиала, резервации услуги и занятость сотрудника за период filter
// Занятость сотрудника загружается только при заданном EmployeeID.
// Вне транзакции три запроса идут параллельно, внутри - последовательно на одном соединении.
func (s *Service) Load(ctx context.Context, filter domain.BusyPeriodFilter) (domain.BusySets, error) {
	if !filter.From.Before(filter.To) {
		return domain.BusySets{}, fmt.Errorf("%w: from=%s to=%s", ErrInvalidPeriod, filter.From, filter.To)
	}

	var sets domain.BusySets

	loaders := []func(ctx context.Context) error{
		func(ctx context.Context) error {
			blocked, err := s.blockedRepo.ListByBranchAndPeriod(ctx, filter.BranchID, filter.From, filter.To)
			if err != nil {
				return fmt.Errorf("%w: blocked times: %w", ErrInternal, err)
			}
			sets.Blocked = fromBlocked(blocked)
			return nil
		},
		func(ctx context.Context) error {
			reserved, err := s.reservationRepo.ListBusyByService(ctx, filter)
			if err != nil {
				return fmt.Errorf("%w: reservations: %w", ErrInternal, err)
			}
			sets.Reserved = fromReservations(reserved)
			return nil
		},
	}

	if filter.EmployeeID != nil {
		loaders = append(loaders, func(ctx context.Context) error {
			employee, err := s.reservationRepo.ListBusyByEmployee(ctx, filter)
			if err != nil {
				return fmt.Errorf("%w: employee id=%d: %w", ErrInternal, *filter.EmployeeID, err)
			}
			sets.Employee = fromReservations(employee)
			return nil
		})
	}

	if dbmetrics.IsInTransaction(ctx) {
		for _, load := range loaders {
			if err := load(ctx); err != nil {
				return domain.BusySets{}, err
			}
		}
		return sets, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		load := load
		g.Go(func() error { return load(gctx) })
	}
	if err := g.Wait(); err != nil {
		return domain.BusySets{}, err
	}

	return sets, nil
}

func fromReservations(list []*domain.Reservation) []domain.BusyInterval {
	result := make([]domain.BusyInterval, 0, len(list))
	for _, r := range list {
		if !r.IsActive() {
			continue
		}
		result = append(result, r.BusyInterval())
	}
	return result
}

func fromBlocked(list []*domain.BlockedTime) []domain.BusyInterval {
	result := make([]domain.BusyInterval, 0, len(list))
	for _, b := range list {
		result = append(result, b.BusyInterval())
	}
	return result
}
