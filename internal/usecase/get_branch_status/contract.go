package get_branch_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error)
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

// StatusResolver определение статуса смены
type StatusResolver interface {
	ShiftStatus(template domain.WeeklyShiftTemplate, timezone string, anchorOffsetHours int, now time.Time, closingSoon time.Duration) (domain.ShiftStatus, error)
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
