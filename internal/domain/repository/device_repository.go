package repository

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// DeviceRepository persistence port for Device (warranty tracking).
type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	GetByID(ctx context.Context, id string) (*entity.Device, error)
	Update(ctx context.Context, device *entity.Device) error
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Device, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Device, error)
	Delete(ctx context.Context, id string) error
}
