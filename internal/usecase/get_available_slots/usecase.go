package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storeClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case для получения доступных слотов для резервации
type UseCase struct {
	storeClient   StoreServiceClient
	busyLoader    BusyLoader
	availability  AvailabilityService
	recorder      SlotsRecorder
	defaultAnchor int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// defaultAnchor - начало бизнес-дня для филиалов без собственной настройки
func NewUseCase(
	storeClient StoreServiceClient,
	busyLoader BusyLoader,
	availability AvailabilityService,
	recorder SlotsRecorder,
	defaultAnchor int,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeClient:   storeClient,
		busyLoader:    busyLoader,
		availability:  availability,
		recorder:      recorder,
		defaultAnchor: defaultAnchor,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: store=%d, branch=%d, service=%d, date=%s",
		req.StoreID, req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем филиал
	branch, err := uc.storeClient.GetBranch(ctx, req.StoreID, req.BranchID)
	if err != nil {
		if errors.Is(err, storeClient.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableSlots: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get branch id=%d: %v", req.BranchID, err)
		if errors.Is(err, storeClient.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.storeClient.GetService(ctx, req.BranchID, req.ServiceID)
	if err != nil {
		if errors.Is(err, storeClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		if errors.Is(err, storeClient.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Проверяем, что на услугу можно записаться
	if err := validateService(service, req.BranchID, req.EmployeeID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%d rejected: %v", req.ServiceID, err)
		return nil, err
	}

	// 6. Валидация даты относительно текущего бизнес-дня филиала
	anchor := branch.AnchorOrDefault(uc.defaultAnchor)
	local, err := availability.Now(now, branch.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: branch id=%d has bad timezone: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := validateDate(req.Date, availability.BusinessDate(local, anchor), service.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Загружаем занятые интервалы бизнес-дня
	// Последний слот может заканчиваться после конца дня, поэтому период расширен на длительность услуги
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, local.Location())
	bounds := availability.BusinessDayBounds(day, anchor)

	busy, err := uc.busyLoader.Load(ctx, domain.BusyPeriodFilter{
		BranchID:   req.BranchID,
		ServiceID:  ptr.Ptr(req.ServiceID),
		EmployeeID: req.EmployeeID,
		From:       bounds.Start,
		To:         bounds.End.Add(time.Duration(service.DurationMinutes) * time.Minute),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to load busy intervals: %v", ErrInternal, err)
	}

	// 8. Рассчитываем слоты
	slots, err := uc.availability.ListAvailableSlots(availability.SlotQuery{
		Date:              req.Date,
		Timezone:          branch.Timezone,
		AnchorOffsetHours: anchor,
		DurationMinutes:   service.DurationMinutes,
		Shifts:            branch.WorkingShifts,
		Window:            service.ReservationTime,
		Busy:              busy,
		RequireEmployee:   service.RequireEmployee,
		IgnoreCurrentTime: req.IgnoreCurrentTime,
		Now:               now,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 9. Ночной хвост вчерашнего бизнес-дня приходится на другую календарную дату,
	// поэтому уже начавшиеся слоты отбрасываем и здесь
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if !req.IgnoreCurrentTime && s.Start.Before(now) {
			continue
		}
		result = append(result, Slot{Start: s.Start, End: s.End})
	}

	uc.recorder.ObserveSlots(len(result), service.RequireEmployee)

	uc.logger.Info("GetAvailableSlots: found %d slots for branch=%d, service=%d, date=%s",
		len(result), req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BranchID:        req.BranchID,
		ServiceID:       req.ServiceID,
		Timezone:        local.Location().String(),
		DurationMinutes: service.DurationMinutes,
		Slots:           result,
	}, nil
}
