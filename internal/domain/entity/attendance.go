package entity

import "time"

// Attendance is one worker's presence record for one day.
// CheckOut is nil while the worker is still on shift.
type Attendance struct {
	ID        string
	StoreID   string
	WorkerID  string
	Day       time.Time // calendar day, midnight UTC
	CheckIn   time.Time
	CheckOut  *time.Time
	CreatedAt time.Time
}

// Duration returns the worked time, zero while the shift is open.
func (a *Attendance) Duration() time.Duration {
	if a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(a.CheckIn)
}
