package blocked

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий ручных блокировок филиала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет блокировку
func (r *Repository) Create(ctx context.Context, b *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("branch_blocked_times").
		Columns("branch_id", "time_from", "time_to", "reason").
		Values(b.BranchID, b.From, b.To, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time

	return b, nil
}

// ListByBranchAndPeriod возвращает блокировки филиала, которые могут пересекать [from, to)
// Строки с NULL границами тоже возвращаются: решение о них принимает проверка доступности
func (r *Repository) ListByBranchAndPeriod(ctx context.Context, branchID int64, from, to time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "branch_id", "time_from", "time_to", "reason", "created_at").
		From("branch_blocked_times").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Or{squirrel.Eq{"time_from": nil}, squirrel.Lt{"time_from": to}}).
		Where(squirrel.Or{squirrel.Eq{"time_to": nil}, squirrel.Gt{"time_to": from}}).
		OrderBy("time_from ASC NULLS FIRST")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR SHARE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranchAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranchAndPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		var b domain.BlockedTime
		var timeFrom, timeTo, createdAt sql.NullTime
		var reason sql.NullString

		if err := rows.Scan(&b.ID, &b.BranchID, &timeFrom, &timeTo, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBranchAndPeriod - scan row: %v", ErrScanRow, err)
		}

		if timeFrom.Valid {
			b.From = &timeFrom.Time
		}
		if timeTo.Valid {
			b.To = &timeTo.Time
		}
		if reason.Valid {
			b.Reason = &reason.String
		}
		b.CreatedAt = createdAt.Time

		result = append(result, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBranchAndPeriod - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
