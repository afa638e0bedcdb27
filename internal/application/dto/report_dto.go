package dto

import "github.com/shopspring/decimal"

// ReportBucket one grouping row of the sales report.
type ReportBucket struct {
	Label    string          `json:"label"`
	Quantity int64           `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
	Profit   decimal.Decimal `json:"profit"`
}

// ReportResponse the aggregated sales report for one period.
type ReportResponse struct {
	Period             string          `json:"period"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	SaleCount          int             `json:"sale_count"`
	TotalUnits         int64           `json:"total_units"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
	ByCategory         []ReportBucket  `json:"by_category"`
	ByWorker           []ReportBucket  `json:"by_worker"`
	InconsistentProfit []string        `json:"inconsistent_profit,omitempty"`
}
