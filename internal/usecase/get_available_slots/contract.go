package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error)
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

// BusyLoader загружает занятые интервалы за период
type BusyLoader interface {
	Load(ctx context.Context, filter domain.BusyPeriodFilter) (domain.BusySets, error)
}

// AvailabilityService расчет доступных слотов
type AvailabilityService interface {
	ListAvailableSlots(q availability.SlotQuery) ([]domain.Slot, error)
}

// SlotsRecorder метрика количества найденных слотов
type SlotsRecorder interface {
	ObserveSlots(count int, requireEmployee bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
