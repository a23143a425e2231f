package invalidate_branch_cache

import "context"

type BranchCache interface {
	InvalidateBranch(ctx context.Context, storeID, branchID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
