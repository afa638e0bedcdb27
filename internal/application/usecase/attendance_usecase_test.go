package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

type memAttendance struct {
	repository.AttendanceRepository

	records map[string]*entity.Attendance
}

func (m *memAttendance) Create(_ context.Context, a *entity.Attendance) error {
	m.records[a.ID] = a
	return nil
}

func (m *memAttendance) GetOpen(_ context.Context, workerID string, day time.Time) (*entity.Attendance, error) {
	for _, a := range m.records {
		if a.WorkerID == workerID && a.Day.Equal(day) && a.CheckOut == nil {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAttendance) SetCheckOut(_ context.Context, id string, at time.Time) error {
	a, ok := m.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.CheckOut = &at
	return nil
}

func newAttendanceFixture(now time.Time) (*AttendanceUseCase, *memAttendance) {
	repo := &memAttendance{records: make(map[string]*entity.Attendance)}
	uc := NewAttendanceUseCase(repo)
	uc.now = func() time.Time { return now }
	return uc, repo
}

func TestCheckIn_OpensShift(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	uc, repo := newAttendanceFixture(now)

	rec, err := uc.CheckIn(context.Background(), "store-1", "w1")
	require.NoError(t, err)

	assert.Equal(t, "w1", rec.WorkerID)
	assert.Equal(t, "2024-03-15", rec.Day)
	assert.Equal(t, now, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Len(t, repo.records, 1)
}

func TestCheckIn_TwiceSameDayConflicts(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	uc, _ := newAttendanceFixture(now)

	_, err := uc.CheckIn(context.Background(), "store-1", "w1")
	require.NoError(t, err)

	_, err = uc.CheckIn(context.Background(), "store-1", "w1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCheckIn_DifferentWorkersSameDay(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	uc, _ := newAttendanceFixture(now)

	_, err := uc.CheckIn(context.Background(), "store-1", "w1")
	require.NoError(t, err)
	_, err = uc.CheckIn(context.Background(), "store-1", "w2")
	assert.NoError(t, err)
}

func TestCheckOut_ClosesShiftAndReportsHours(t *testing.T) {
	checkIn := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	uc, _ := newAttendanceFixture(checkIn)

	_, err := uc.CheckIn(context.Background(), "store-1", "w1")
	require.NoError(t, err)

	// Eight and a half hours later.
	uc.now = func() time.Time { return checkIn.Add(8*time.Hour + 30*time.Minute) }
	rec, err := uc.CheckOut(context.Background(), "w1")
	require.NoError(t, err)

	require.NotNil(t, rec.CheckOut)
	assert.InDelta(t, 8.5, rec.WorkedHours, 0.001)
}

func TestCheckOut_WithoutOpenShift(t *testing.T) {
	uc, _ := newAttendanceFixture(time.Now())

	_, err := uc.CheckOut(context.Background(), "w1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckOut_TwiceFails(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	uc, _ := newAttendanceFixture(now)

	_, err := uc.CheckIn(context.Background(), "store-1", "w1")
	require.NoError(t, err)
	_, err = uc.CheckOut(context.Background(), "w1")
	require.NoError(t, err)

	// The record is closed now; there is nothing open to close again.
	_, err = uc.CheckOut(context.Background(), "w1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
