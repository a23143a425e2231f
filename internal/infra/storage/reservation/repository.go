package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"user_id",
	"store_id",
	"branch_id",
	"service_id",
	"employee_id",
	"time_from",
	"time_to",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"store_id",
			"branch_id",
			"service_id",
			"employee_id",
			"time_from",
			"time_to",
			"status",
			"notes",
		).
		Values(
			res.UserID,
			res.StoreID,
			res.BranchID,
			res.ServiceID,
			res.EmployeeID,
			res.From,
			res.To,
			res.Status,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByUser получает резервации пользователя, новые сверху
// Если status передан, фильтрует по нему
func (r *Repository) ListByUser(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("time_from DESC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*status)})
	}

	return r.list(ctx, "ListByUser", builder)
}

// UpdateStatus обновляет статус резервации
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListBusyByService возвращает активные резервации услуги в филиале, пересекающие период
func (r *Repository) ListBusyByService(ctx context.Context, filter domain.BusyPeriodFilter) ([]*domain.Reservation, error) {
	builder := r.busyQuery(filter).Where(squirrel.Eq{"branch_id": filter.BranchID})
	if filter.ServiceID != nil {
		builder = builder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}

	return r.list(ctx, "ListBusyByService", builder)
}

// ListBusyByEmployee возвращает активные резервации сотрудника, пересекающие период
// Сотрудник может обслуживать несколько филиалов, поэтому branch_id не учитывается
func (r *Repository) ListBusyByEmployee(ctx context.Context, filter domain.BusyPeriodFilter) ([]*domain.Reservation, error) {
	if filter.EmployeeID == nil {
		return nil, nil
	}

	builder := r.busyQuery(filter).Where(squirrel.Eq{"employee_id": *filter.EmployeeID})

	return r.list(ctx, "ListBusyByEmployee", builder)
}

func (r *Repository) busyQuery(filter domain.BusyPeriodFilter) squirrel.SelectBuilder {
	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Lt{"time_from": filter.To}).
		Where(squirrel.Gt{"time_to": filter.From}).
		Where(squirrel.NotEq{"status": inactive}).
		OrderBy("time_from ASC")
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Внутри транзакции блокируем строки, чтобы параллельная резервация ждала коммита
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var employeeID sql.NullInt64
	var notes sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.StoreID,
		&res.BranchID,
		&res.ServiceID,
		&employeeID,
		&res.From,
		&res.To,
		&res.Status,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if employeeID.Valid {
		res.EmployeeID = &employeeID.Int64
	}
	if notes.Valid {
		res.Notes = &notes.String
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
