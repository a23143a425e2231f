package get_branch_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storeClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
)

// UseCase статус филиала: открыт, закрыт или скоро закрывается
type UseCase struct {
	storeClient   StoreServiceClient
	resolver      StatusResolver
	defaultAnchor int
	closingSoon   time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	storeClient StoreServiceClient,
	resolver StatusResolver,
	defaultAnchor int,
	closingSoon time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeClient:   storeClient,
		resolver:      resolver,
		defaultAnchor: defaultAnchor,
		closingSoon:   closingSoon,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StoreID <= 0 || req.BranchID <= 0 {
		return nil, fmt.Errorf("%w: storeID and branchID must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	branch, err := uc.storeClient.GetBranch(ctx, req.StoreID, req.BranchID)
	if err != nil {
		if errors.Is(err, storeClient.ErrBranchNotFound) {
			uc.logger.Warn("GetBranchStatus: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetBranchStatus: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	status, err := uc.resolver.ShiftStatus(
		branch.WorkingShifts,
		branch.Timezone,
		branch.AnchorOrDefault(uc.defaultAnchor),
		now,
		uc.closingSoon,
	)
	if err != nil {
		uc.logger.Error("GetBranchStatus: branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	local, _ := availability.Now(now, branch.Timezone)
	resp := &Response{
		Status: domain.BranchStatus{
			BranchID: branch.ID,
			Status:   status,
			At:       local,
		},
		Timezone:           local.Location().String(),
		IsReceivingTickets: status != domain.ShiftClosed && !branch.IsNotReceivingTickets,
	}

	if req.ServiceID == nil {
		return resp, nil
	}

	service, err := uc.storeClient.GetService(ctx, req.BranchID, *req.ServiceID)
	if err != nil {
		if errors.Is(err, storeClient.ErrServiceNotFound) {
			uc.logger.Warn("GetBranchStatus: service id=%d not found", *req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetBranchStatus: failed to get service id=%d: %v", *req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	open, err := availability.IsWithinReservationWindow(service.ReservationTime, branch.Timezone, now)
	if err != nil {
		// Битое окно услуги не должно закрывать очередь
		uc.logger.Warn("GetBranchStatus: service id=%d has malformed window, ignoring: %v", service.ID, err)
		open = true
	}
	open = open && resp.IsReceivingTickets && !service.NotActive

	resp.Status.ServiceID = &service.ID
	resp.Status.WaitingOpen = &open

	return resp, nil
}
