package dto

import "time"

// RegisterAdminRequest body for POST /api/auth/register. Creates the store
// and its admin account in one step.
type RegisterAdminRequest struct {
	StoreName string `json:"store_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
}

// AdminLoginRequest body for POST /api/auth/login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// WorkerLoginRequest body for POST /api/auth/worker-login (shift sign-in).
type WorkerLoginRequest struct {
	StoreID    string `json:"store_id"`
	WorkerCode string `json:"worker_code"`
	PIN        string `json:"pin"`
}

// CreateWorkerRequest body for POST /api/workers (admin only).
type CreateWorkerRequest struct {
	Name       string `json:"name"`
	WorkerCode string `json:"worker_code"`
	PIN        string `json:"pin"`
}

// UserResponse user representation in responses (never includes credentials).
type UserResponse struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	Email      string    `json:"email,omitempty"`
	WorkerCode string    `json:"worker_code,omitempty"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
