package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// AttendanceUseCase worker check-in/check-out and daily listings.
type AttendanceUseCase struct {
	repo repository.AttendanceRepository
	now  func() time.Time
}

// NewAttendanceUseCase builds the use case.
func NewAttendanceUseCase(repo repository.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, now: time.Now}
}

// CheckIn opens the worker's attendance for today. A second check-in on the
// same day fails with ErrConflict.
func (uc *AttendanceUseCase) CheckIn(ctx context.Context, storeID, workerID string) (*dto.AttendanceResponse, error) {
	now := uc.now()
	day := dayOf(now)
	open, err := uc.repo.GetOpen(ctx, workerID, day)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrConflict
	}
	a := &entity.Attendance{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		WorkerID:  workerID,
		Day:       day,
		CheckIn:   now,
		CreatedAt: now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAttendanceResponse(a), nil
}

// CheckOut closes today's open attendance. Fails with ErrNotFound when the
// worker never checked in.
func (uc *AttendanceUseCase) CheckOut(ctx context.Context, workerID string) (*dto.AttendanceResponse, error) {
	now := uc.now()
	open, err := uc.repo.GetOpen(ctx, workerID, dayOf(now))
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetCheckOut(ctx, open.ID, now); err != nil {
		return nil, err
	}
	open.CheckOut = &now
	return toAttendanceResponse(open), nil
}

// ListByDay returns the store's attendance for one calendar day.
func (uc *AttendanceUseCase) ListByDay(ctx context.Context, storeID string, day time.Time) (*dto.AttendanceListResponse, error) {
	list, err := uc.repo.ListByDay(ctx, storeID, dayOf(day))
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttendanceResponse(a))
	}
	return &dto.AttendanceListResponse{Items: items}, nil
}

// ListByWorker returns one worker's attendance history.
func (uc *AttendanceUseCase) ListByWorker(ctx context.Context, workerID string, limit, offset int) (*dto.AttendanceListResponse, error) {
	list, err := uc.repo.ListByWorker(ctx, workerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttendanceResponse(a))
	}
	return &dto.AttendanceListResponse{Items: items}, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		Day:         a.Day.Format("2006-01-02"),
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
		WorkedHours: a.Duration().Hours(),
	}
}
