package repository

import (
	"context"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// SettingsRepository persistence port for per-store settings.
type SettingsRepository interface {
	Get(ctx context.Context, storeID, key string) (*entity.Setting, error)
	Set(ctx context.Context, setting *entity.Setting) error
	ListByStore(ctx context.Context, storeID string) ([]*entity.Setting, error)
}
