package check_availability

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

// BusyLoader загружает занятые интервалы за период
type BusyLoader interface {
	Load(ctx context.Context, filter domain.BusyPeriodFilter) (domain.BusySets, error)
}

// AvailabilityService проверка одного интервала
type AvailabilityService interface {
	IsIntervalAvailable(candidate domain.Interval, busy domain.BusySets, requireEmployee bool) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
