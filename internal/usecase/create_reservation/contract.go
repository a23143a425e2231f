package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/events"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error)
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

// BusyLoader загружает занятые интервалы за период
type BusyLoader interface {
	Load(ctx context.Context, filter domain.BusyPeriodFilter) (domain.BusySets, error)
}

// AvailabilityService расчет и проверка доступности
type AvailabilityService interface {
	ListAvailableSlots(q availability.SlotQuery) ([]domain.Slot, error)
	IsIntervalAvailable(candidate domain.Interval, busy domain.BusySets, requireEmployee bool) bool
}

// EventPublisher публикация событий о резервациях
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event events.ReservationCreated) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
