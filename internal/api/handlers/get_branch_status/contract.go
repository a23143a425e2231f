package get_branch_status

import (
	"context"

	getBranchStatus "github.com/m04kA/SMC-ReservationService/internal/usecase/get_branch_status"
)

type GetBranchStatusUseCase interface {
	Execute(ctx context.Context, req *getBranchStatus.Request) (*getBranchStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
