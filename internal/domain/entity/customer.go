package entity

import "time"

// Customer is a store customer (sales, devices under warranty).
type Customer struct {
	ID        string
	StoreID   string
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
