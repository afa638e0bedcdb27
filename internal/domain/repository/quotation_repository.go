package repository

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// QuotationRepository persistence port for Quotation header + lines.
type QuotationRepository interface {
	Create(ctx context.Context, q *entity.Quotation, lines []*entity.QuotationLine) error
	GetByID(ctx context.Context, id string) (*entity.Quotation, []*entity.QuotationLine, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Quotation, error)
	Delete(ctx context.Context, id string) error
}
