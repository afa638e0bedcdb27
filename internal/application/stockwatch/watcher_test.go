package stockwatch_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/stockwatch"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
	"github.com/dukkanhq/dukkan-api/pkg/logger"
)

// In-memory fakes. Each embeds its port interface so only the methods the
// watcher touches need implementations; calling anything else panics loudly.

type fakeStores struct {
	repository.StoreRepository
	stores []*entity.Store
}

func (f *fakeStores) List(_ context.Context) ([]*entity.Store, error) {
	return f.stores, nil
}

type fakeUsers struct {
	repository.UserRepository
	admins map[string]*entity.User // storeID -> admin
}

func (f *fakeUsers) FindAdmin(_ context.Context, storeID string) (*entity.User, error) {
	return f.admins[storeID], nil
}

type fakeProducts struct {
	repository.ProductRepository

	mu     sync.Mutex
	low    []*entity.Product
	marked map[string]time.Time
}

func (f *fakeProducts) ListLowStock(_ context.Context, storeID string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.low {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) MarkNotified(_ context.Context, productID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.marked == nil {
		f.marked = make(map[string]time.Time)
	}
	f.marked[productID] = at
	return nil
}

type fakeNotifications struct {
	repository.NotificationRepository

	mu      sync.Mutex
	created []*entity.Notification
}

func (f *fakeNotifications) Create(_ context.Context, n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifications) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakeSettings struct {
	repository.SettingsRepository
	values map[string]string // storeID|key -> value
}

func (f *fakeSettings) Get(_ context.Context, storeID, key string) (*entity.Setting, error) {
	v, ok := f.values[storeID+"|"+key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{StoreID: storeID, Key: key, Value: v}, nil
}

type fixture struct {
	watcher  *stockwatch.Watcher
	products *fakeProducts
	notifs   *fakeNotifications
	settings *fakeSettings
}

func lowProduct(id, storeID, name string, stock, minStock int64) *entity.Product {
	return &entity.Product{ID: id, StoreID: storeID, Name: name, Stock: stock, MinStock: minStock}
}

func newFixture(cfg stockwatch.Config, products ...*entity.Product) *fixture {
	stores := &fakeStores{stores: []*entity.Store{{ID: "store-1", Name: "دكان"}}}
	users := &fakeUsers{admins: map[string]*entity.User{
		"store-1": {ID: "admin-1", StoreID: "store-1", Role: entity.RoleAdmin},
	}}
	prodRepo := &fakeProducts{low: products}
	notifs := &fakeNotifications{}
	settings := &fakeSettings{values: map[string]string{
		"store-1|" + entity.SettingLowStockAlertsEnabled: "true",
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	w := stockwatch.New(stores, prodRepo, users, notifs, settings, log, cfg)
	return &fixture{watcher: w, products: prodRepo, notifs: notifs, settings: settings}
}

func TestPoll_NotifiesOncePerProduct(t *testing.T) {
	fx := newFixture(stockwatch.Config{}, lowProduct("p1", "store-1", "كابل شحن", 2, 5))

	// Repeated polls on the same instance must not re-alert.
	for i := 0; i < 5; i++ {
		require.NoError(t, fx.watcher.Poll(context.Background()))
	}

	require.Equal(t, 1, fx.notifs.count())
	n := fx.notifs.created[0]
	assert.Equal(t, "admin-1", n.UserID)
	assert.Equal(t, entity.NotificationWarning, n.Type)
	assert.Equal(t, "تنبيه انخفاض المخزون", n.Title)
	assert.Contains(t, n.Message, "كابل شحن")
	assert.Contains(t, n.Message, strconv.Itoa(2))
	assert.Equal(t, "/products/p1", n.Link)

	_, marked := fx.products.marked["p1"]
	assert.True(t, marked, "last_notified_at must be persisted")
}

func TestPoll_EachLowProductGetsItsOwnAlert(t *testing.T) {
	fx := newFixture(stockwatch.Config{},
		lowProduct("p1", "store-1", "كابل شحن", 0, 5),
		lowProduct("p2", "store-1", "سماعة", 3, 3),
	)

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Equal(t, 2, fx.notifs.count())
}

func TestPoll_DisabledFlagSkipsStore(t *testing.T) {
	fx := newFixture(stockwatch.Config{}, lowProduct("p1", "store-1", "كابل شحن", 1, 5))
	fx.settings.values["store-1|"+entity.SettingLowStockAlertsEnabled] = "false"

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Zero(t, fx.notifs.count())
}

func TestPoll_MissingFlagCountsAsDisabled(t *testing.T) {
	fx := newFixture(stockwatch.Config{}, lowProduct("p1", "store-1", "كابل شحن", 1, 5))
	delete(fx.settings.values, "store-1|"+entity.SettingLowStockAlertsEnabled)

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Zero(t, fx.notifs.count())
}

func TestPoll_CooldownSuppressesRecentAlert(t *testing.T) {
	recent := time.Now().Add(-time.Hour)
	p := lowProduct("p1", "store-1", "كابل شحن", 1, 5)
	p.LastNotifiedAt = &recent

	// A fresh instance has an empty notified set; only the persisted
	// timestamp stands between the product and a duplicate alert.
	fx := newFixture(stockwatch.Config{Cooldown: 24 * time.Hour}, p)

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Zero(t, fx.notifs.count())
}

func TestPoll_CooldownExpiredReAlerts(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	p := lowProduct("p1", "store-1", "كابل شحن", 1, 5)
	p.LastNotifiedAt = &old

	fx := newFixture(stockwatch.Config{Cooldown: 24 * time.Hour}, p)

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Equal(t, 1, fx.notifs.count())
}

func TestPoll_StoreCooldownSettingOverridesConfig(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour)
	p := lowProduct("p1", "store-1", "كابل شحن", 1, 5)
	p.LastNotifiedAt = &recent

	// Config would re-alert after an hour, but the store stretched its
	// cooldown to 48h.
	fx := newFixture(stockwatch.Config{Cooldown: time.Hour}, p)
	fx.settings.values["store-1|"+entity.SettingLowStockCooldownHours] = "48"

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Zero(t, fx.notifs.count())
}

func TestPoll_MalformedCooldownSettingFallsBack(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour)
	p := lowProduct("p1", "store-1", "كابل شحن", 1, 5)
	p.LastNotifiedAt = &recent

	fx := newFixture(stockwatch.Config{Cooldown: time.Hour}, p)
	fx.settings.values["store-1|"+entity.SettingLowStockCooldownHours] = "two days"

	require.NoError(t, fx.watcher.Poll(context.Background()))

	assert.Equal(t, 1, fx.notifs.count())
}

func TestPoll_CanceledContextStopsBeforeSideEffects(t *testing.T) {
	fx := newFixture(stockwatch.Config{}, lowProduct("p1", "store-1", "كابل شحن", 1, 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fx.watcher.Poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fx.notifs.count())
}

func TestPoll_NoAdminSkipsStore(t *testing.T) {
	fx := newFixture(stockwatch.Config{}, lowProduct("p1", "store-1", "كابل شحن", 1, 5))
	// Rebuild with no admin on record.
	stores := &fakeStores{stores: []*entity.Store{{ID: "store-1"}}}
	users := &fakeUsers{admins: map[string]*entity.User{}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	w := stockwatch.New(stores, fx.products, users, fx.notifs, fx.settings, log, stockwatch.Config{})

	require.NoError(t, w.Poll(context.Background()))

	assert.Zero(t, fx.notifs.count())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	fx := newFixture(stockwatch.Config{Interval: 5 * time.Millisecond}, lowProduct("p1", "store-1", "كابل شحن", 1, 5))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		fx.watcher.Run(ctx)
		close(done)
	}()

	// Let a few ticks pass, then cancel; Run must return promptly and the
	// instance-level de-dup keeps the alert count at one.
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	assert.Equal(t, 1, fx.notifs.count())
}
