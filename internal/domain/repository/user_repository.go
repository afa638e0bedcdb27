package repository

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// UserRepository persistence port for User (admin and shift workers).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByWorkerCode(ctx context.Context, storeID, code string) (*entity.User, error)
	// FindAdmin returns the store's admin account, nil when none exists.
	FindAdmin(ctx context.Context, storeID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListWorkers(ctx context.Context, storeID string) ([]*entity.User, error)
	// ListByStore returns every account of the store, admin included.
	ListByStore(ctx context.Context, storeID string) ([]*entity.User, error)
}
