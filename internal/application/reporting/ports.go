package reporting

import (
	"context"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
)

// SummaryCache caches rendered report summaries. Implementations may be
// remote (Redis) or a no-op when no cache is configured.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*dto.ReportResponse, bool, error)
	Set(ctx context.Context, key string, value *dto.ReportResponse, ttl time.Duration) error
}

// NoopSummaryCache disables caching.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(_ context.Context, _ string) (*dto.ReportResponse, bool, error) {
	return nil, false, nil
}

func (NoopSummaryCache) Set(_ context.Context, _ string, _ *dto.ReportResponse, _ time.Duration) error {
	return nil
}

// PDFGenerator renders a report summary as a printable PDF.
type PDFGenerator interface {
	ReportPDF(report *dto.ReportResponse, storeName string) ([]byte, error)
}
