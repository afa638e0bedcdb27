package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo StoreRepository adapter over PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository builds the store persistence adapter.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persists a store.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stores (id, name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		store.ID, store.Name, store.Phone, store.Address, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID returns a store by ID, nil when absent.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx,
		`SELECT id, name, phone, address, created_at, updated_at FROM stores WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update rewrites the mutable columns of a store.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	_, err := r.q.Exec(ctx, `
		UPDATE stores SET name = $2, phone = $3, address = $4, updated_at = $5 WHERE id = $1`,
		store.ID, store.Name, store.Phone, store.Address, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// List returns every store.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, phone, address, created_at, updated_at FROM stores ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
