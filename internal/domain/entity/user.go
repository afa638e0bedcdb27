package entity

import "time"

// Roles. The admin owns the store; workers sign in per shift with a code and PIN.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// User is an account of the system: the store admin (email + password) or a
// shift worker (worker code + PIN). PasswordHash holds the bcrypt hash of
// whichever credential applies.
type User struct {
	ID           string
	StoreID      string
	Email        string // admin only
	WorkerCode   string // worker only, unique per store
	PasswordHash string
	Name         string
	Role         string // admin, worker
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
