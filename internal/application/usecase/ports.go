package usecase

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// CheckoutTxRunner runs a checkout callback inside one database transaction,
// with the repositories bound to that transaction.
type CheckoutTxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
