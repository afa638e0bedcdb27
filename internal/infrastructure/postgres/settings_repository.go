package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo SettingsRepository adapter over PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the settings persistence adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get returns one setting, nil when unset.
func (r *SettingsRepo) Get(ctx context.Context, storeID, key string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.q.QueryRow(ctx,
		`SELECT store_id, key, value, updated_at FROM settings WHERE store_id = $1 AND key = $2`,
		storeID, key,
	).Scan(&s.StoreID, &s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Set writes a setting (upsert).
func (r *SettingsRepo) Set(ctx context.Context, setting *entity.Setting) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO settings (store_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (store_id, key) DO UPDATE SET value = $3, updated_at = $4`,
		setting.StoreID, setting.Key, setting.Value, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// ListByStore returns every setting of the store.
func (r *SettingsRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Setting, error) {
	rows, err := r.q.Query(ctx,
		`SELECT store_id, key, value, updated_at FROM settings WHERE store_id = $1 ORDER BY key`,
		storeID)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.StoreID, &s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
