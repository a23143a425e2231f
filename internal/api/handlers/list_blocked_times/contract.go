package list_blocked_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/blocked"
)

type BlockedTimeService interface {
	List(ctx context.Context, branchID int64, from, to time.Time) ([]blocked.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
