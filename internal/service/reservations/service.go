package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/events"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с резервациями пользователя
type Service struct {
	repo         ReservationRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	repo ReservationRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает резервацию по ID
// Пользователь видит только свои резервации
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if res.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetUserReservations получает историю резерваций пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	list, err := s.repo.ListByUser(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(list), req.UserID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет резервацию пользователя
// Отменить можно только активную резервацию, которая еще не началась
// После отмены интервал снова считается свободным
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Cancel: canceling reservation id=%d by user=%d", id, userID)

	var canceled *domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.get(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if res.UserID != userID {
			s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", userID, id)
			return ErrAccessDenied
		}

		if !res.IsActive() || !s.timeProvider.Now().Before(res.From) {
			s.logger.Warn("Cancel: reservation id=%d cannot be canceled, status=%s", id, res.Status)
			return ErrCannotCancel
		}

		if err := s.repo.UpdateStatus(txCtx, id, domain.StatusCanceled); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		canceled = res
		return nil
	})
	if err != nil {
		return err
	}

	event := events.ReservationCanceled{
		ReservationID: canceled.ID,
		UserID:        canceled.UserID,
		BranchID:      canceled.BranchID,
		From:          canceled.From,
		To:            canceled.To,
		OccurredAt:    s.timeProvider.Now().UTC(),
	}
	if err := s.publisher.PublishReservationCanceled(ctx, event); err != nil {
		s.logger.Error("Cancel: failed to publish event for reservation id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: reservation id=%d canceled", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}
