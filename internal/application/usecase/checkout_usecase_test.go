package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// memProducts is an in-memory ProductRepository covering the methods checkout
// touches, with the same no-negative-stock rule as the SQL implementation.
type memProducts struct {
	repository.ProductRepository

	mu       sync.Mutex
	products map[string]*entity.Product
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) AdjustStock(_ context.Context, productID string, delta int64) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock += delta
	cp := *p
	return &cp, nil
}

type memSales struct {
	repository.SaleRepository

	mu    sync.Mutex
	sales []*entity.Sale
}

func (m *memSales) Create(_ context.Context, s *entity.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales = append(m.sales, s)
	return nil
}

func (m *memSales) ListByWorker(_ context.Context, storeID, workerID string, limit, offset int) ([]*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.StoreID == storeID && s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// memTxRunner mimics transaction semantics: on error it restores the product
// snapshot and discards created sales.
type memTxRunner struct {
	products *memProducts
	sales    *memSales
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	snapshot := make(map[string]*entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		cp := *p
		snapshot[id] = &cp
	}
	salesLen := len(r.sales.sales)

	if err := fn(r.products, r.sales); err != nil {
		r.products.products = snapshot
		r.sales.sales = r.sales.sales[:salesLen]
		return err
	}
	return nil
}

func product(id string, price, cost float64, stock int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		StoreID:  "store-1",
		Name:     "قهوة عربية",
		Category: "قهوة",
		Price:    decimal.NewFromFloat(price),
		Cost:     decimal.NewFromFloat(cost),
		Stock:    stock,
		MinStock: 2,
	}
}

func newCheckoutFixture(products ...*entity.Product) (*CheckoutUseCase, *memProducts, *memSales) {
	byID := make(map[string]*entity.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	mp := &memProducts{products: byID}
	ms := &memSales{}
	return NewCheckoutUseCase(&memTxRunner{products: mp, sales: ms}, ms), mp, ms
}

func TestCheckout_RecordsLedgerAndDecrementsStock(t *testing.T) {
	uc, mp, ms := newCheckoutFixture(product("p1", 10, 4, 5))

	out, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, out.Sales, 1)
	sale := out.Sales[0]
	assert.Equal(t, "قهوة عربية", sale.ProductName)
	assert.Equal(t, "قهوة", sale.Category)
	assert.Equal(t, int64(2), sale.Quantity)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(20)))
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(12)))
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, int64(3), mp.products["p1"].Stock)
	require.Len(t, ms.sales, 1)
	assert.Equal(t, "w1", ms.sales[0].WorkerID)
	assert.WithinDuration(t, time.Now(), ms.sales[0].SaleDate, time.Minute)
}

func TestCheckout_MultiLineGrandTotal(t *testing.T) {
	uc, _, ms := newCheckoutFixture(product("p1", 10, 4, 5), product("p2", 8, 3, 10))

	out, err := uc.Checkout(context.Background(), "store-1", "", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Len(t, out.Sales, 2)
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(34)), "10 + 3*8, got %s", out.GrandTotal)
	assert.Empty(t, ms.sales[0].WorkerID, "admin sale carries no worker id")
}

func TestCheckout_InsufficientStockRollsBackWholeCart(t *testing.T) {
	uc, mp, ms := newCheckoutFixture(product("p1", 10, 4, 5), product("p2", 8, 3, 1))

	_, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{
			{ProductID: "p1", Quantity: 2}, // would succeed alone
			{ProductID: "p2", Quantity: 3}, // only 1 in stock
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The earlier decrement must not survive.
	assert.Equal(t, int64(5), mp.products["p1"].Stock)
	assert.Equal(t, int64(1), mp.products["p2"].Stock)
	assert.Empty(t, ms.sales)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	uc, _, ms := newCheckoutFixture(product("p1", 10, 4, 5))

	_, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "ghost", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ms.sales)
}

func TestCheckout_ProductFromAnotherStore(t *testing.T) {
	uc, _, _ := newCheckoutFixture(product("p1", 10, 4, 5))

	_, err := uc.Checkout(context.Background(), "store-2", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckout_RejectsInvalidCarts(t *testing.T) {
	uc, _, _ := newCheckoutFixture(product("p1", 10, 4, 5))

	_, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty cart")

	_, err = uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")

	_, err = uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing product id")
}

func TestCheckout_ExactStockToZero(t *testing.T) {
	uc, mp, _ := newCheckoutFixture(product("p1", 10, 4, 3))

	_, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Zero(t, mp.products["p1"].Stock)
}

func TestListByWorker_ReturnsOwnLedgerPage(t *testing.T) {
	uc, _, _ := newCheckoutFixture(product("p1", 10, 4, 10), product("p2", 8, 3, 10))

	_, err := uc.Checkout(context.Background(), "store-1", "w1", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = uc.Checkout(context.Background(), "store-1", "w2", dto.CheckoutRequest{
		Lines: []dto.CheckoutLine{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	mine, err := uc.ListByWorker(context.Background(), "store-1", "w1", 20, 0)
	require.NoError(t, err)
	require.Len(t, mine.Items, 2)
	for _, s := range mine.Items {
		assert.Equal(t, "w1", s.WorkerID)
	}

	page, err := uc.ListByWorker(context.Background(), "store-1", "w1", 1, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Page.Offset)

	other, err := uc.ListByWorker(context.Background(), "store-1", "w3", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
