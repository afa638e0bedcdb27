package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item of the store inventory.
// Stock is decremented by checkout and set directly by inventory edits.
// LastNotifiedAt records the last low-stock alert emitted for the product,
// so alert de-duplication survives restarts and multiple instances.
type Product struct {
	ID             string
	StoreID        string
	Barcode        string // unique per store
	Name           string
	Category       string
	Price          decimal.Decimal // selling price
	Cost           decimal.Decimal // purchase cost
	Stock          int64
	MinStock       int64 // reorder threshold; stock <= min_stock means "low"
	LastNotifiedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLow reports whether the product is at or below its reorder threshold.
func (p *Product) IsLow() bool {
	return p.Stock <= p.MinStock
}
