package offering

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rajaput123/SevaBookingService/internal/domain"
	"github.com/rajaput123/SevaBookingService/pkg/dbmetrics"
	"github.com/rajaput123/SevaBookingService/pkg/psqlbuilder"
	"github.com/rajaput123/SevaBookingService/pkg/types"
)

var offeringColumns = []string{
	"id",
	"name",
	"description",
	"status",
	"start_time",
	"end_time",
	"applicable_days",
	"capacity",
	"amount",
	"created_at",
	"updated_at",
}

// Repository persistence for seva offerings
type Repository struct {
	db DBExecutor
}

// NewRepository creates an offering repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new offering
func (r *Repository) Create(ctx context.Context, o *domain.Offering) (*domain.Offering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("offerings").
		Columns(
			"name",
			"description",
			"status",
			"start_time",
			"end_time",
			"applicable_days",
			"capacity",
			"amount",
		).
		Values(
			o.Name,
			o.Description,
			o.Status,
			o.StartTime,
			o.EndTime,
			pq.Array(o.ApplicableDays),
			o.Capacity,
			o.Amount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByID fetches one offering by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offeringColumns...).
		From("offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	offering, err := scanOffering(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offering: %v", ErrScanRow, err)
	}

	return offering, nil
}

// List returns all offerings, or only active ones, ordered by name
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Offering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(offeringColumns...).
		From("offerings").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.OfferingActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offerings := make([]*domain.Offering, 0)
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		offerings = append(offerings, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return offerings, nil
}

// UpdateSchedule replaces the schedule-related fields of an offering:
// status, time window, applicable days and per-slot capacity
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, o *domain.Offering) (*domain.Offering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("offerings").
		Set("status", o.Status).
		Set("start_time", o.StartTime).
		Set("end_time", o.EndTime).
		Set("applicable_days", pq.Array(o.ApplicableDays)).
		Set("capacity", o.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	o.ID = id
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffering(row rowScanner) (*domain.Offering, error) {
	var o domain.Offering
	var startTime, endTime types.TimeString
	var capacity sql.NullInt64
	var days pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.Status,
		&startTime,
		&endTime,
		&days,
		&capacity,
		&o.Amount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if !startTime.IsZero() {
		o.StartTime = &startTime
	}
	if !endTime.IsZero() {
		o.EndTime = &endTime
	}
	if capacity.Valid {
		c := int(capacity.Int64)
		o.Capacity = &c
	}
	o.ApplicableDays = []string(days)
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
