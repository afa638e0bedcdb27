package usecase

import (
	"context"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// SettingsUseCase per-store key/value settings, including the low-stock
// alerts feature flag the watcher reads.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// List returns every setting of the store.
func (uc *SettingsUseCase) List(ctx context.Context, storeID string) ([]dto.SettingResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SettingResponse{Key: s.Key, Value: s.Value})
	}
	return items, nil
}

// Get returns one setting, nil when unset.
func (uc *SettingsUseCase) Get(ctx context.Context, storeID, key string) (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(ctx, storeID, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &dto.SettingResponse{Key: s.Key, Value: s.Value}, nil
}

// Set writes one setting (admin only).
func (uc *SettingsUseCase) Set(ctx context.Context, storeID, key, value string) (*dto.SettingResponse, error) {
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Setting{
		StoreID:   storeID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Set(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SettingResponse{Key: s.Key, Value: s.Value}, nil
}
