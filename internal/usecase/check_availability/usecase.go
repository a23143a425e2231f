package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storeClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase проверка произвольного интервала на конфликты с занятыми интервалами
// Смены и окно бронирования не проверяются
type UseCase struct {
	storeClient  StoreServiceClient
	busyLoader   BusyLoader
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(storeClient StoreServiceClient, busyLoader BusyLoader, availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		storeClient:  storeClient,
		busyLoader:   busyLoader,
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.storeClient.GetService(ctx, req.BranchID, req.ServiceID)
	if err != nil {
		if errors.Is(err, storeClient.ErrServiceNotFound) {
			uc.logger.Warn("CheckAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service, req.BranchID, req.EmployeeID); err != nil {
		uc.logger.Warn("CheckAvailability: service id=%d rejected for branch=%d: %v", req.ServiceID, req.BranchID, err)
		return nil, err
	}

	busy, err := uc.busyLoader.Load(ctx, domain.BusyPeriodFilter{
		BranchID:   req.BranchID,
		ServiceID:  ptr.Ptr(req.ServiceID),
		EmployeeID: req.EmployeeID,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to load busy intervals: %v", ErrInternal, err)
	}

	available := uc.availability.IsIntervalAvailable(
		domain.Interval{Start: req.From, End: req.To},
		busy,
		service.RequireEmployee,
	)

	uc.logger.Info("CheckAvailability: branch=%d, service=%d, %s - %s available=%t",
		req.BranchID, req.ServiceID, req.From.Format(timeLayout), req.To.Format(timeLayout), available)

	return &Response{Available: available}, nil
}

const timeLayout = "2006-01-02 15:04"
