package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one line of the permanent sales ledger, created at checkout and
// immutable thereafter. ProductName and Category are denormalized snapshots,
// not live references, so later product edits do not rewrite history.
type Sale struct {
	ID          string
	StoreID     string
	WorkerID    string // empty when the sale was recorded by the admin account
	ProductName string
	Category    string
	Quantity    int64
	UnitPrice   decimal.Decimal
	CostPrice   decimal.Decimal
	Total       decimal.Decimal // quantity * unit_price
	Profit      decimal.Decimal // quantity * (unit_price - cost_price), stored as written
	SaleDate    time.Time
	CreatedAt   time.Time
}
