package repository

import (
	"context"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// SaleRepository persistence port for the sales ledger. Sales are append-only;
// there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// ListByDateRange returns the store's sales with sale_date inside the
	// inclusive [start, end] calendar-day interval, in insertion order.
	ListByDateRange(ctx context.Context, storeID string, start, end time.Time) ([]*entity.Sale, error)
	ListByWorker(ctx context.Context, storeID, workerID string, limit, offset int) ([]*entity.Sale, error)
}
