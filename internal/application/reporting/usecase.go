package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// cacheTTL keeps report summaries hot for a short while; the ledger is
// append-only so staleness is bounded by new sales, not edits.
const cacheTTL = 2 * time.Minute

// ReportUseCase fetches a period's sales, reduces them and serves the three
// output shapes: JSON summary, shareable text and PDF.
type ReportUseCase struct {
	sales     repository.SaleRepository
	users     repository.UserRepository
	stores    repository.StoreRepository
	cache     SummaryCache
	pdf       PDFGenerator
	weekStart time.Weekday
}

// NewReportUseCase builds the use case. cache may be NoopSummaryCache.
func NewReportUseCase(
	sales repository.SaleRepository,
	users repository.UserRepository,
	stores repository.StoreRepository,
	cache SummaryCache,
	pdf PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		sales:     sales,
		users:     users,
		stores:    stores,
		cache:     cache,
		pdf:       pdf,
		weekStart: DefaultWeekStart,
	}
}

// GetSummary aggregates the store's sales for the period containing refDate.
// validateProfit surfaces records whose stored profit disagrees with the
// recomputed value; the totals are never corrected.
func (uc *ReportUseCase) GetSummary(
	ctx context.Context,
	storeID string,
	period Period,
	refDate time.Time,
	validateProfit bool,
) (*dto.ReportResponse, error) {
	r, err := PeriodRange(period, refDate, uc.weekStart)
	if err != nil {
		return nil, err
	}
	start, end := r.Strings()

	key := fmt.Sprintf("report:%s:%s:%s:%t", storeID, period, start, validateProfit)
	if cached, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		return cached, nil
	}

	sales, err := uc.sales.ListByDateRange(ctx, storeID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("report: fetch sales: %w", err)
	}

	names, err := uc.userNames(ctx, storeID)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(sales, Options{WorkerNames: names, ValidateProfit: validateProfit})

	out := toReportResponse(summary, period, start, end)
	_ = uc.cache.Set(ctx, key, out, cacheTTL)
	return out, nil
}

// GetText renders the period report as the shared plain-text block.
func (uc *ReportUseCase) GetText(
	ctx context.Context,
	storeID string,
	period Period,
	refDate time.Time,
) (string, error) {
	r, err := PeriodRange(period, refDate, uc.weekStart)
	if err != nil {
		return "", err
	}

	sales, err := uc.sales.ListByDateRange(ctx, storeID, r.Start, r.End)
	if err != nil {
		return "", fmt.Errorf("report: fetch sales: %w", err)
	}
	names, err := uc.userNames(ctx, storeID)
	if err != nil {
		return "", err
	}

	summary := Aggregate(sales, Options{WorkerNames: names})
	return RenderText(summary, period, r), nil
}

// GetPDF renders the period report as a printable PDF document.
func (uc *ReportUseCase) GetPDF(
	ctx context.Context,
	storeID string,
	period Period,
	refDate time.Time,
) ([]byte, error) {
	report, err := uc.GetSummary(ctx, storeID, period, refDate, false)
	if err != nil {
		return nil, err
	}
	storeName := ""
	if store, err := uc.stores.GetByID(ctx, storeID); err == nil && store != nil {
		storeName = store.Name
	}
	return uc.pdf.ReportPDF(report, storeName)
}

// userNames maps user ID to display name for every account of the store.
// Admins ring sales up too, so the admin must resolve like any worker.
func (uc *ReportUseCase) userNames(ctx context.Context, storeID string) (map[string]string, error) {
	users, err := uc.users.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("report: list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func toReportResponse(s *Summary, period Period, start, end string) *dto.ReportResponse {
	out := &dto.ReportResponse{
		Period:             string(period),
		StartDate:          start,
		EndDate:            end,
		SaleCount:          s.SaleCount,
		TotalUnits:         s.TotalUnits,
		TotalRevenue:       s.TotalRevenue,
		TotalCost:          s.TotalCost,
		TotalProfit:        s.TotalProfit,
		ByCategory:         make([]dto.ReportBucket, 0, len(s.CategoryOrder)),
		ByWorker:           make([]dto.ReportBucket, 0, len(s.WorkerOrder)),
		InconsistentProfit: s.InconsistentProfit,
	}
	for _, cat := range s.CategoryOrder {
		b := s.ByCategory[cat]
		out.ByCategory = append(out.ByCategory, dto.ReportBucket{
			Label: cat, Quantity: b.Quantity, Total: b.Total, Profit: b.Profit,
		})
	}
	for _, w := range s.WorkerOrder {
		b := s.ByWorker[w]
		out.ByWorker = append(out.ByWorker, dto.ReportBucket{
			Label: w, Quantity: b.Quantity, Total: b.Total, Profit: b.Profit,
		})
	}
	return out
}
