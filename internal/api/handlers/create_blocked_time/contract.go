package create_blocked_time

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/blocked"
)

type BlockedTimeService interface {
	Create(ctx context.Context, req *blocked.CreateRequest) (*blocked.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
