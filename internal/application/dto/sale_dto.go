package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutLine one product line of a checkout request.
type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CheckoutRequest body for POST /api/sales.
type CheckoutRequest struct {
	Lines []CheckoutLine `json:"lines"`
}

// SaleResponse one ledger entry in responses.
type SaleResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id,omitempty"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Total       decimal.Decimal `json:"total"`
	Profit      decimal.Decimal `json:"profit"`
	SaleDate    time.Time       `json:"sale_date"`
}

// SaleListResponse paginated ledger page.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CheckoutResponse result of a checkout: the created ledger entries and the
// grand total charged.
type CheckoutResponse struct {
	Sales      []SaleResponse  `json:"sales"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
