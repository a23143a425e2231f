package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/events"
	storeClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	storeClient     StoreServiceClient
	busyLoader      BusyLoader
	availability    AvailabilityService
	publisher       EventPublisher
	txManager       TransactionManager
	defaultAnchor   int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	storeClient StoreServiceClient,
	busyLoader BusyLoader,
	availability AvailabilityService,
	publisher EventPublisher,
	txManager TransactionManager,
	defaultAnchor int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		storeClient:     storeClient,
		busyLoader:      busyLoader,
		availability:    availability,
		publisher:       publisher,
		txManager:       txManager,
		defaultAnchor:   defaultAnchor,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, store=%d, branch=%d, service=%d, start=%s",
		req.UserID, req.StoreID, req.BranchID, req.ServiceID, req.Start.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем филиал и услугу
	branch, err := uc.storeClient.GetBranch(ctx, req.StoreID, req.BranchID)
	if err != nil {
		if errors.Is(err, storeClient.ErrBranchNotFound) {
			uc.logger.Warn("CreateReservation: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("CreateReservation: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	service, err := uc.storeClient.GetService(ctx, req.BranchID, req.ServiceID)
	if err != nil {
		if errors.Is(err, storeClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service, req.BranchID, req.EmployeeID); err != nil {
		uc.logger.Warn("CreateReservation: service id=%d rejected: %v", req.ServiceID, err)
		return nil, err
	}

	// 4. Слот не должен быть в прошлом
	if req.Start.Before(now) {
		uc.logger.Warn("CreateReservation: start %s is before now", req.Start.Format(time.RFC3339))
		return nil, ErrInvalidDate
	}

	// 5. Определяем бизнес-день слота и проверяем ограничение записи заранее
	anchor := branch.AnchorOrDefault(uc.defaultAnchor)
	localStart, err := availability.Now(req.Start, branch.Timezone)
	if err != nil {
		uc.logger.Error("CreateReservation: branch id=%d has bad timezone: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	localNow := now.In(localStart.Location())

	businessDate := availability.BusinessDate(localStart, anchor)
	if err := validateAdvance(businessDate, availability.BusinessDate(localNow, anchor), service.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	// 6. Начало должно совпадать со слотом расписания (смены и окно услуги)
	grid, err := uc.availability.ListAvailableSlots(availability.SlotQuery{
		Date:              businessDate,
		Timezone:          branch.Timezone,
		AnchorOffsetHours: anchor,
		DurationMinutes:   service.DurationMinutes,
		Shifts:            branch.WorkingShifts,
		Window:            service.ReservationTime,
		RequireEmployee:   service.RequireEmployee,
		IgnoreCurrentTime: true,
		Now:               now,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	slot, ok := findSlot(grid, req.Start)
	if !ok {
		uc.logger.Warn("CreateReservation: start %s is not a slot of branch=%d, service=%d",
			req.Start.Format(time.RFC3339), req.BranchID, req.ServiceID)
		return nil, ErrInvalidTimeSlot
	}

	var result *domain.Reservation

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		busy, err := uc.busyLoader.Load(txCtx, domain.BusyPeriodFilter{
			BranchID:   req.BranchID,
			ServiceID:  ptr.Ptr(req.ServiceID),
			EmployeeID: req.EmployeeID,
			From:       slot.Start,
			To:         slot.End,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to load busy intervals: %v", err)
			return fmt.Errorf("%w: failed to load busy intervals: %w", ErrInternal, err)
		}

		if !uc.availability.IsIntervalAvailable(slot.Interval(), busy, service.RequireEmployee) {
			uc.logger.Warn("CreateReservation: slot %s - %s is taken",
				slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:     req.UserID,
			StoreID:    req.StoreID,
			BranchID:   req.BranchID,
			ServiceID:  req.ServiceID,
			EmployeeID: req.EmployeeID,
			From:       slot.Start,
			To:         slot.End,
			Status:     domain.StatusPending,
			Notes:      req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		// Параллельная транзакция заняла тот же интервал раньше
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: concurrent reservation of slot %s - %s: %v",
				slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: concurrent reservation", ErrSlotNotAvailable)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 8. Событие публикуется после коммита, сбой публикации не отменяет резервацию
	event := events.ReservationCreated{
		ReservationID: result.ID,
		UserID:        result.UserID,
		StoreID:       result.StoreID,
		BranchID:      result.BranchID,
		ServiceID:     result.ServiceID,
		EmployeeID:    result.EmployeeID,
		From:          result.From,
		To:            result.To,
		Status:        string(result.Status),
		OccurredAt:    now,
	}
	if err := uc.publisher.PublishReservationCreated(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish event for reservation id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		StoreID:    result.StoreID,
		BranchID:   result.BranchID,
		ServiceID:  result.ServiceID,
		EmployeeID: result.EmployeeID,
		From:       result.From,
		To:         result.To,
		Status:     string(result.Status),
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
	}, nil
}
