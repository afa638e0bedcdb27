package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationLineRequest one line of a quotation create request.
type QuotationLineRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest body for POST /api/quotations.
type CreateQuotationRequest struct {
	CustomerID string                 `json:"customer_id"`
	Lines      []QuotationLineRequest `json:"lines"`
	Discount   decimal.Decimal        `json:"discount"`
	TaxRate    decimal.Decimal        `json:"tax_rate"`
	ValidUntil time.Time              `json:"valid_until"`
}

// QuotationLineResponse one line in responses.
type QuotationLineResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuotationResponse quotation header plus lines.
type QuotationResponse struct {
	ID         string                  `json:"id"`
	CustomerID string                  `json:"customer_id"`
	Number     string                  `json:"number"`
	Status     string                  `json:"status"`
	Subtotal   decimal.Decimal         `json:"subtotal"`
	Discount   decimal.Decimal         `json:"discount"`
	TaxRate    decimal.Decimal         `json:"tax_rate"`
	TaxTotal   decimal.Decimal         `json:"tax_total"`
	GrandTotal decimal.Decimal         `json:"grand_total"`
	ValidUntil time.Time               `json:"valid_until"`
	Lines      []QuotationLineResponse `json:"lines,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

// QuotationListResponse paginated quotation list.
type QuotationListResponse struct {
	Items []QuotationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
