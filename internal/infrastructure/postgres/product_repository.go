package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
	"github.com/dukkanhq/dukkan-api/pkg/arabic"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, store_id, barcode, name, category, price, cost, stock, min_stock, last_notified_at, created_at, updated_at`

// ProductRepo ProductRepository adapter over PostgreSQL (pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. search_name holds the folded form of the
// name so lookups match regardless of tashkeel or hamza spelling.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `, search_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.StoreID, product.Barcode, product.Name, product.Category,
		product.Price, product.Cost, product.Stock, product.MinStock,
		product.LastNotifiedAt, product.CreatedAt, product.UpdatedAt,
		arabic.Normalize(product.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns a product by ID, nil when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByStoreAndBarcode returns a product by store and barcode, nil when absent.
func (r *ProductRepo) GetByStoreAndBarcode(ctx context.Context, storeID, barcode string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 AND barcode = $2`,
		storeID, barcode)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return p, nil
}

// Update rewrites the mutable columns of a product.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, cost = $5, stock = $6,
		    min_stock = $7, last_notified_at = $8, updated_at = $9, search_name = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Price, product.Cost,
		product.Stock, product.MinStock, product.LastNotifiedAt, product.UpdatedAt,
		arabic.Normalize(product.Name),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock adds delta to stock atomically. The WHERE guard keeps the stock
// from going negative; zero rows affected on a decrement means not enough stock.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID string, delta int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `
		UPDATE products
		SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING `+productColumns, productID, delta)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the product is gone or the decrement would go below zero.
			existing, getErr := r.GetByID(ctx, productID)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return p, nil
}

// ListByStore lists the store's products with pagination.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// SearchByStore matches the folded query against search_name as a substring.
func (r *ProductRepo) SearchByStore(ctx context.Context, storeID, query string, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE store_id = $1 AND search_name LIKE '%' || $2 || '%'
		 ORDER BY name LIMIT $3 OFFSET $4`,
		storeID, arabic.Normalize(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return scanProducts(rows)
}

// ListLowStock returns products at or below their reorder threshold.
func (r *ProductRepo) ListLowStock(ctx context.Context, storeID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 AND stock <= min_stock ORDER BY name`,
		storeID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return scanProducts(rows)
}

// MarkNotified stamps the product's last low-stock alert time.
func (r *ProductRepo) MarkNotified(ctx context.Context, productID string, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET last_notified_at = $2 WHERE id = $1`,
		productID, at)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.StoreID, &p.Barcode, &p.Name, &p.Category, &p.Price,
		&p.Cost, &p.Stock, &p.MinStock, &p.LastNotifiedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
