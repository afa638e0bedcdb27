package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// Fakes embed their port interface; only the methods the report path touches
// are implemented.

type fakeSaleRepo struct {
	repository.SaleRepository
	sales []*entity.Sale
}

func (f *fakeSaleRepo) ListByDateRange(_ context.Context, storeID string, _, _ time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.StoreID == storeID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users []*entity.User
}

func (f *fakeUserRepo) ListByStore(_ context.Context, storeID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.StoreID == storeID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeStoreRepo struct {
	repository.StoreRepository
}

func TestGetSummary_ResolvesAdminAndWorkerNames(t *testing.T) {
	sales := &fakeSaleRepo{sales: []*entity.Sale{
		sale("s1", "admin-1", "قهوة عربية", "قهوة", 2, 10, 4),
		sale("s2", "w1", "شاي أخضر", "شاي", 1, 8, 3),
		sale("s3", "", "سكر", "مواد غذائية", 1, 2, 1),
	}}
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "admin-1", StoreID: "store-1", Name: "مالك المتجر", Role: entity.RoleAdmin},
		{ID: "w1", StoreID: "store-1", Name: "أحمد", Role: entity.RoleWorker},
	}}
	uc := reporting.NewReportUseCase(sales, users, &fakeStoreRepo{}, reporting.NoopSummaryCache{}, nil)

	out, err := uc.GetSummary(context.Background(), "store-1", reporting.PeriodDaily,
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), false)
	require.NoError(t, err)

	labels := make([]string, 0, len(out.ByWorker))
	for _, b := range out.ByWorker {
		labels = append(labels, b.Label)
	}
	// Admin-rung sales carry the admin's name, not the unknown bucket.
	assert.Contains(t, labels, "مالك المتجر")
	assert.Contains(t, labels, "أحمد")
	assert.Contains(t, labels, reporting.UnknownWorkerLabel)
	assert.Len(t, labels, 3)
}
