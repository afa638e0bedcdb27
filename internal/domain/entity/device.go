package entity

import "time"

// Device is a customer device tracked for warranty.
// WarrantyEnd = PurchaseDate + WarrantyMonths, computed at registration.
type Device struct {
	ID             string
	StoreID        string
	CustomerID     string
	Name           string
	SerialNumber   string
	PurchaseDate   time.Time
	WarrantyMonths int
	WarrantyEnd    time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WarrantyActive reports whether the warranty covers the given instant.
func (d *Device) WarrantyActive(now time.Time) bool {
	return !now.After(d.WarrantyEnd)
}

// WarrantyDaysLeft returns whole days of warranty remaining at now, never negative.
func (d *Device) WarrantyDaysLeft(now time.Time) int {
	if now.After(d.WarrantyEnd) {
		return 0
	}
	return int(d.WarrantyEnd.Sub(now).Hours() / 24)
}
