package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/linework/internal/db"
	"github.com/alexanderramin/linework/internal/domain"
)

const runColumns = `id, generated_at, rate, placeholder_resource,
		item_count, scheduled_count, warning_count, created_at`

const itemColumns = `id, run_id, seq, scope_id, phase_id, request_id,
		resource, placement, quantity, start_date, end_date`

// SQLiteRunRepo implements RunRepo over a db.DBTX.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a RunRepo bound to the given DBTX, which may be
// a plain *sql.DB or a transaction handed out by the unit of work.
func NewSQLiteRunRepo(dbtx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: dbtx}
}

func (r *SQLiteRunRepo) CreateRun(ctx context.Context, run *domain.ScheduleRun) error {
	query := `INSERT INTO schedule_runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.GeneratedAt.UTC().Format(time.RFC3339),
		run.Rate,
		run.PlaceholderResource,
		run.ItemCount,
		run.ScheduledCount,
		run.WarningCount,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) CreateItem(ctx context.Context, runID string, item *domain.WorkItem) error {
	query := `INSERT INTO scheduled_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		runID,
		item.Seq,
		item.ScopeID,
		item.PhaseID,
		item.RequestID,
		item.Resource,
		item.Placement,
		item.QuantityValue(),
		nullableTimeToString(item.Start, dateLayout),
		nullableTimeToString(item.End, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled item: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetRun(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	query := `SELECT ` + runColumns + ` FROM schedule_runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s not found", id)
	}
	return run, err
}

func (r *SQLiteRunRepo) ListRuns(ctx context.Context, limit int) ([]*domain.ScheduleRun, error) {
	query := `SELECT ` + runColumns + ` FROM schedule_runs ORDER BY generated_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ScheduleRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *SQLiteRunRepo) ListItems(ctx context.Context, runID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + itemColumns + ` FROM scheduled_items WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled items: %w", err)
	}
	defer rows.Close()

	var items []*domain.WorkItem
	for rows.Next() {
		var (
			item       domain.WorkItem
			runRef     string
			quantity   float64
			start, end sql.NullString
		)
		if err := rows.Scan(
			&item.ID,
			&runRef,
			&item.Seq,
			&item.ScopeID,
			&item.PhaseID,
			&item.RequestID,
			&item.Resource,
			&item.Placement,
			&quantity,
			&start,
			&end,
		); err != nil {
			return nil, fmt.Errorf("scanning scheduled item: %w", err)
		}
		item.Quantity = &quantity
		item.Start = parseNullableTime(start, dateLayout)
		item.End = parseNullableTime(end, dateLayout)
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *SQLiteRunRepo) DeleteRun(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.ScheduleRun, error) {
	var (
		run                    domain.ScheduleRun
		generatedAt, createdAt string
	)
	if err := row.Scan(
		&run.ID,
		&generatedAt,
		&run.Rate,
		&run.PlaceholderResource,
		&run.ItemCount,
		&run.ScheduledCount,
		&run.WarningCount,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}

	t, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	run.GeneratedAt = t

	t, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	run.CreatedAt = t

	return &run, nil
}
