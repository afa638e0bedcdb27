package repository

import (
	"context"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// AttendanceRepository persistence port for worker attendance.
type AttendanceRepository interface {
	Create(ctx context.Context, a *entity.Attendance) error
	// GetOpen returns the worker's attendance for the given day with no
	// check-out yet, or nil if none.
	GetOpen(ctx context.Context, workerID string, day time.Time) (*entity.Attendance, error)
	SetCheckOut(ctx context.Context, id string, at time.Time) error
	ListByDay(ctx context.Context, storeID string, day time.Time) ([]*entity.Attendance, error)
	ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*entity.Attendance, error)
}
