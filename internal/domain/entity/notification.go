package entity

import "time"

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is an in-app message for one user. Low-stock alerts are
// created with type warning; the user deletes them explicitly.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string // info, success, warning, error
	Link      string // optional navigation target
	IsRead    bool
	CreatedAt time.Time
}
