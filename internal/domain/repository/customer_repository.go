package repository

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// CustomerRepository persistence port for Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
