package dto

import "time"

// AttendanceResponse one attendance record with derived duration.
type AttendanceResponse struct {
	ID          string     `json:"id"`
	WorkerID    string     `json:"worker_id"`
	Day         string     `json:"day"` // YYYY-MM-DD
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	WorkedHours float64    `json:"worked_hours"`
}

// AttendanceListResponse attendance records for one day or worker.
type AttendanceListResponse struct {
	Items []AttendanceResponse `json:"items"`
}
