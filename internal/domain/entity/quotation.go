package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation statuses.
const (
	QuotationDraft    = "draft"
	QuotationSent     = "sent"
	QuotationAccepted = "accepted"
	QuotationRejected = "rejected"
)

// Quotation is a priced offer to a customer. Totals are derived from the
// lines plus discount and tax at creation time.
type Quotation struct {
	ID         string
	StoreID    string
	CustomerID string
	Number     string
	Status     string // draft, sent, accepted, rejected
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal // absolute amount subtracted from subtotal
	TaxRate    decimal.Decimal // percentage applied after discount
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	ValidUntil time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuotationLine one line of a quotation.
type QuotationLine struct {
	ID          string
	QuotationID string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
