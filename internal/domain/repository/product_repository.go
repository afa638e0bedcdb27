package repository

import (
	"context"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// ProductRepository persistence port for Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByStoreAndBarcode(ctx context.Context, storeID, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock adds delta (may be negative) to a product's stock and returns
	// the updated row. Implementations must fail with domain.ErrInsufficientStock
	// instead of letting the stock go below zero.
	AdjustStock(ctx context.Context, productID string, delta int64) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error)
	// SearchByStore matches product names against query. Implementations decide
	// the matching rules (the SQL adapter folds Arabic forms on both sides).
	SearchByStore(ctx context.Context, storeID, query string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock returns products where stock <= min_stock.
	ListLowStock(ctx context.Context, storeID string) ([]*entity.Product, error)
	// MarkNotified records when a low-stock alert was emitted for the product.
	MarkNotified(ctx context.Context, productID string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
