package entity

import "time"

// Store is one shop tenant. Every other record hangs off a store.
type Store struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
