package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, store_id, worker_id, day, check_in, check_out, created_at`

// AttendanceRepo AttendanceRepository adapter over PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository builds the attendance persistence adapter.
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persists an attendance record.
func (r *AttendanceRepo) Create(ctx context.Context, a *entity.Attendance) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO attendance (`+attendanceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.StoreID, a.WorkerID, a.Day, a.CheckIn, a.CheckOut, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetOpen returns the worker's open (no check-out) record for the day, nil when absent.
func (r *AttendanceRepo) GetOpen(ctx context.Context, workerID string, day time.Time) (*entity.Attendance, error) {
	a, err := scanAttendance(r.q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE worker_id = $1 AND day = $2 AND check_out IS NULL`,
		workerID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open attendance: %w", err)
	}
	return a, nil
}

// SetCheckOut closes an attendance record.
func (r *AttendanceRepo) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE attendance SET check_out = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("set check out: %w", err)
	}
	return nil
}

// ListByDay returns the store's attendance for one calendar day.
func (r *AttendanceRepo) ListByDay(ctx context.Context, storeID string, day time.Time) ([]*entity.Attendance, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE store_id = $1 AND day = $2 ORDER BY check_in`,
		storeID, day)
	if err != nil {
		return nil, fmt.Errorf("list attendance by day: %w", err)
	}
	return scanAttendances(rows)
}

// ListByWorker returns one worker's attendance history, newest first.
func (r *AttendanceRepo) ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*entity.Attendance, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE worker_id = $1 ORDER BY day DESC LIMIT $2 OFFSET $3`,
		workerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list attendance by worker: %w", err)
	}
	return scanAttendances(rows)
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	err := row.Scan(&a.ID, &a.StoreID, &a.WorkerID, &a.Day, &a.CheckIn, &a.CheckOut, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAttendances(rows pgx.Rows) ([]*entity.Attendance, error) {
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
