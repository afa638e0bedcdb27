package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

const quotationColumns = `id, store_id, customer_id, number, status, subtotal, discount, tax_rate, tax_total, grand_total, valid_until, created_at, updated_at`

// QuotationRepo QuotationRepository adapter over PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository builds the quotation persistence adapter.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persists a quotation header with its lines.
func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation, lines []*entity.QuotationLine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		q.ID, q.StoreID, q.CustomerID, q.Number, q.Status, q.Subtotal, q.Discount,
		q.TaxRate, q.TaxTotal, q.GrandTotal, q.ValidUntil, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO quotation_lines (id, quotation_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.QuotationID, l.ProductName, l.Quantity, l.UnitPrice, l.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert quotation line: %w", err)
		}
	}
	return nil
}

// GetByID returns a quotation and its lines, nils when absent.
func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, []*entity.QuotationLine, error) {
	var q entity.Quotation
	err := r.q.QueryRow(ctx,
		`SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id,
	).Scan(&q.ID, &q.StoreID, &q.CustomerID, &q.Number, &q.Status, &q.Subtotal,
		&q.Discount, &q.TaxRate, &q.TaxTotal, &q.GrandTotal, &q.ValidUntil,
		&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get quotation: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, quotation_id, product_name, quantity, unit_price, subtotal
		FROM quotation_lines WHERE quotation_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list quotation lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.QuotationLine
	for rows.Next() {
		var l entity.QuotationLine
		if err := rows.Scan(&l.ID, &l.QuotationID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, nil, fmt.Errorf("scan quotation line: %w", err)
		}
		lines = append(lines, &l)
	}
	return &q, lines, rows.Err()
}

// UpdateStatus moves a quotation to another status.
func (r *QuotationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	return nil
}

// ListByStore lists the store's quotations with pagination.
func (r *QuotationRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Quotation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+quotationColumns+` FROM quotations WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(&q.ID, &q.StoreID, &q.CustomerID, &q.Number, &q.Status,
			&q.Subtotal, &q.Discount, &q.TaxRate, &q.TaxTotal, &q.GrandTotal,
			&q.ValidUntil, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete removes a quotation and its lines.
func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_lines WHERE quotation_id = $1`, id); err != nil {
		return fmt.Errorf("delete quotation lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}
