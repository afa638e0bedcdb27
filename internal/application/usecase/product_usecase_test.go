package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// memCatalog covers the methods the product use case reaches; anything else
// panics through the embedded interface.
type memCatalog struct {
	repository.ProductRepository

	created  []*entity.Product
	searched string
	listed   bool
}

func (m *memCatalog) Create(_ context.Context, p *entity.Product) error {
	m.created = append(m.created, p)
	return nil
}

func (m *memCatalog) GetByStoreAndBarcode(_ context.Context, storeID, barcode string) (*entity.Product, error) {
	for _, p := range m.created {
		if p.StoreID == storeID && p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memCatalog) ListByStore(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	m.listed = true
	return m.created, nil
}

func (m *memCatalog) SearchByStore(_ context.Context, _ string, query string, _, _ int) ([]*entity.Product, error) {
	m.searched = query
	var out []*entity.Product
	for _, p := range m.created {
		if strings.Contains(p.Name, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestProductCreate_Validation(t *testing.T) {
	repo := &memCatalog{}
	uc := NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), "store-1", dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:  "شاي أخضر",
		Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:  "شاي أخضر",
		Price: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_DuplicateBarcode(t *testing.T) {
	repo := &memCatalog{}
	uc := NewProductUseCase(repo)

	first, err := uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:    "قهوة عربية",
		Barcode: "6281000000011",
		Price:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:    "قهوة تركية",
		Barcode: "6281000000011",
		Price:   decimal.NewFromInt(15),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Same barcode in another store is fine.
	_, err = uc.Create(context.Background(), "store-2", dto.CreateProductRequest{
		Name:    "قهوة تركية",
		Barcode: "6281000000011",
		Price:   decimal.NewFromInt(15),
	})
	assert.NoError(t, err)
}

func TestProductCreate_IsLowAtThreshold(t *testing.T) {
	repo := &memCatalog{}
	uc := NewProductUseCase(repo)

	atThreshold, err := uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:     "قهوة عربية",
		Stock:    5,
		MinStock: 5,
	})
	require.NoError(t, err)
	assert.True(t, atThreshold.IsLow, "stock == min_stock is low")

	above, err := uc.Create(context.Background(), "store-1", dto.CreateProductRequest{
		Name:     "شاي أخضر",
		Stock:    6,
		MinStock: 5,
	})
	require.NoError(t, err)
	assert.False(t, above.IsLow, "one unit above the threshold is not low")
}

func TestProductList_RoutesSearch(t *testing.T) {
	repo := &memCatalog{}
	uc := NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), "store-1", dto.CreateProductRequest{Name: "قهوة عربية"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "store-1", dto.CreateProductRequest{Name: "شاي أخضر"})
	require.NoError(t, err)

	out, err := uc.List(context.Background(), "store-1", "", 20, 0)
	require.NoError(t, err)
	assert.True(t, repo.listed)
	assert.Empty(t, repo.searched)
	assert.Len(t, out.Items, 2)

	out, err = uc.List(context.Background(), "store-1", "شاي", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "شاي", repo.searched)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "شاي أخضر", out.Items[0].Name)
}
