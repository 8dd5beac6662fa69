package festival

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/pkg/dbmetrics"
	"github.com/rajaput123/SevaBookingService/pkg/psqlbuilder"
)

// Executor interface reused from dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository persistence for temple festival closures
type Repository struct {
	db DBExecutor
}

// NewRepository creates a festival repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new festival closure range
func (r *Repository) Create(ctx context.Context, f *domain.FestivalEvent) (*domain.FestivalEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("festival_events").
		Columns("name", "start_date", "end_date").
		Values(f.Name, f.StartDate, f.EndDate).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time

	return f, nil
}

// ListForDate returns festivals whose inclusive range contains the date.
// A non-empty result means the temple is closed on that day.
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.FestivalEvent, error) {
	return r.ListInRange(ctx, &date, &date)
}

// ListInRange returns festivals whose inclusive range overlaps [from, to],
// ordered by start date. Nil bounds are unbounded.
func (r *Repository) ListInRange(ctx context.Context, from, to *time.Time) ([]*domain.FestivalEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "start_date", "end_date", "created_at").
		From("festival_events").
		OrderBy("start_date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	festivals := make([]*domain.FestivalEvent, 0)
	for rows.Next() {
		var f domain.FestivalEvent
		var createdAt sql.NullTime

		if err := rows.Scan(&f.ID, &f.Name, &f.StartDate, &f.EndDate, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %v", ErrScanRow, err)
		}

		f.CreatedAt = createdAt.Time
		festivals = append(festivals, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}

	return festivals, nil
}

// Delete removes a festival closure
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("festival_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFestivalNotFound
	}

	return nil
}
