package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, store_id, worker_id, product_name, category, quantity, unit_price, cost_price, total, profit, sale_date, created_at`

// SaleRepo SaleRepository adapter over PostgreSQL. The ledger is append-only.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the sale persistence adapter.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create appends one ledger entry.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.StoreID, sale.WorkerID, sale.ProductName, sale.Category,
		sale.Quantity, sale.UnitPrice, sale.CostPrice, sale.Total, sale.Profit,
		sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByDateRange returns sales whose sale_date falls inside the inclusive
// calendar-day interval, oldest first.
func (r *SaleRepo) ListByDateRange(ctx context.Context, storeID string, start, end time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE store_id = $1 AND sale_date >= $2 AND sale_date < $3
		ORDER BY sale_date, created_at`,
		storeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list sales by range: %w", err)
	}
	return scanSales(rows)
}

// ListByWorker returns one worker's sales, newest first.
func (r *SaleRepo) ListByWorker(ctx context.Context, storeID, workerID string, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE store_id = $1 AND worker_id = $2
		ORDER BY sale_date DESC LIMIT $3 OFFSET $4`,
		storeID, workerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales by worker: %w", err)
	}
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var workerID *string
		if err := rows.Scan(&s.ID, &s.StoreID, &workerID, &s.ProductName, &s.Category,
			&s.Quantity, &s.UnitPrice, &s.CostPrice, &s.Total, &s.Profit,
			&s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if workerID != nil {
			s.WorkerID = *workerID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
