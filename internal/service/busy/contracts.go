package busy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListBusyByService(ctx context.Context, filter domain.BusyPeriodFilter) ([]*domain.Reservation, error)
	ListBusyByEmployee(ctx context.Context, filter domain.BusyPeriodFilter) ([]*domain.Reservation, error)
}

// BlockedRepository интерфейс репозитория блокировок филиала
type BlockedRepository interface {
	ListByBranchAndPeriod(ctx context.Context, branchID int64, from, to time.Time) ([]*domain.BlockedTime, error)
}
