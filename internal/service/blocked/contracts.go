package blocked

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	Create(ctx context.Context, b *domain.BlockedTime) (*domain.BlockedTime, error)
	ListByBranchAndPeriod(ctx context.Context, branchID int64, from, to time.Time) ([]*domain.BlockedTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
