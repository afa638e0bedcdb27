// Package reporting reduces the sales ledger into period reports: grouped
// totals, derived financial metrics and the plain-text export shared across
// message, email and print channels.
package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// UnknownWorkerLabel groups sales whose worker reference cannot be resolved.
const UnknownWorkerLabel = "غير معروف"

// Bucket accumulates one grouping key (a category or a worker).
type Bucket struct {
	Quantity int64
	Total    decimal.Decimal
	Profit   decimal.Decimal
}

// Summary is the full reduction of a set of sale records.
//
// ByCategory and ByWorker are created lazily: a key appears only if at least
// one record carried it, and CategoryOrder/WorkerOrder preserve first-seen
// order for deterministic rendering.
type Summary struct {
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalUnits   int64
	SaleCount    int

	ByCategory    map[string]*Bucket
	CategoryOrder []string
	ByWorker      map[string]*Bucket
	WorkerOrder   []string

	// InconsistentProfit lists sale IDs whose stored profit disagrees with
	// quantity*(unit_price-cost_price). Populated only when
	// Options.ValidateProfit is set; the totals still use the stored value.
	InconsistentProfit []string
}

// Options tunes the aggregation.
type Options struct {
	// WorkerNames maps worker IDs to display names. Unresolvable or empty
	// worker IDs fall back to UnknownWorkerLabel.
	WorkerNames map[string]string
	// ValidateProfit flags records with an inconsistent stored profit instead
	// of silently recomputing it.
	ValidateProfit bool
}

// Aggregate reduces sale records into a Summary. It is a pure function:
// summation order does not change any numeric result, and Aggregate of an
// empty slice yields zero totals with empty groupings.
//
// TotalProfit sums the profit stored on each record rather than recomputing
// revenue minus cost; producers own that value.
func Aggregate(sales []*entity.Sale, opts Options) *Summary {
	s := &Summary{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
		ByCategory:   make(map[string]*Bucket),
		ByWorker:     make(map[string]*Bucket),
	}

	for _, sale := range sales {
		qty := decimal.NewFromInt(sale.Quantity)
		cost := sale.CostPrice.Mul(qty)

		s.TotalRevenue = s.TotalRevenue.Add(sale.Total)
		s.TotalCost = s.TotalCost.Add(cost)
		s.TotalProfit = s.TotalProfit.Add(sale.Profit)
		s.TotalUnits += sale.Quantity
		s.SaleCount++

		if opts.ValidateProfit {
			expected := qty.Mul(sale.UnitPrice.Sub(sale.CostPrice))
			if !sale.Profit.Equal(expected) {
				s.InconsistentProfit = append(s.InconsistentProfit, sale.ID)
			}
		}

		catBucket, ok := s.ByCategory[sale.Category]
		if !ok {
			catBucket = &Bucket{Total: decimal.Zero, Profit: decimal.Zero}
			s.ByCategory[sale.Category] = catBucket
			s.CategoryOrder = append(s.CategoryOrder, sale.Category)
		}
		catBucket.Quantity += sale.Quantity
		catBucket.Total = catBucket.Total.Add(sale.Total)
		catBucket.Profit = catBucket.Profit.Add(sale.Profit)

		worker := workerLabel(sale.WorkerID, opts.WorkerNames)
		wBucket, ok := s.ByWorker[worker]
		if !ok {
			wBucket = &Bucket{Total: decimal.Zero, Profit: decimal.Zero}
			s.ByWorker[worker] = wBucket
			s.WorkerOrder = append(s.WorkerOrder, worker)
		}
		wBucket.Quantity += sale.Quantity
		wBucket.Total = wBucket.Total.Add(sale.Total)
		wBucket.Profit = wBucket.Profit.Add(sale.Profit)
	}

	return s
}

func workerLabel(workerID string, names map[string]string) string {
	if workerID == "" {
		return UnknownWorkerLabel
	}
	if name, ok := names[workerID]; ok && name != "" {
		return name
	}
	return UnknownWorkerLabel
}
