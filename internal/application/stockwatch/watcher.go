// Package stockwatch runs the recurring low-stock poll: products at or below
// their reorder threshold raise one warning notification for the store admin,
// de-duplicated both in memory and through products.last_notified_at so the
// guarantee survives restarts and concurrent instances.
package stockwatch

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
	"github.com/dukkanhq/dukkan-api/pkg/logger"
	"github.com/google/uuid"
)

// Config watcher tuning.
type Config struct {
	Interval time.Duration // poll cadence; <= 0 falls back to a minute
	Cooldown time.Duration // minimum gap between alerts for the same product
}

// Watcher polls product stock and emits low-stock notifications.
//
// De-duplication happens at three layers, innermost first:
//  1. notified: per-instance set, marked before the notification is sent so
//     an overlapping iteration cannot double-fire;
//  2. last_notified_at on the product row, so restarts and sibling instances
//     respect the cooldown;
//  3. an in-flight flag that drops a poll tick arriving while the previous
//     poll is still running.
type Watcher struct {
	stores   repository.StoreRepository
	products repository.ProductRepository
	users    repository.UserRepository
	notifs   repository.NotificationRepository
	settings repository.SettingsRepository
	log      *logger.Logger
	cfg      Config

	inFlight atomic.Bool

	mu       sync.Mutex
	notified map[string]struct{} // product IDs alerted by this instance
}

// New builds the watcher. The notified set belongs to this instance; two
// watchers never share it.
func New(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	notifs repository.NotificationRepository,
	settings repository.SettingsRepository,
	log *logger.Logger,
	cfg Config,
) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Watcher{
		stores:   stores,
		products: products,
		users:    users,
		notifs:   notifs,
		settings: settings,
		log:      log,
		cfg:      cfg,
		notified: make(map[string]struct{}),
	}
}

// Run polls once immediately and then on every interval tick until ctx is
// done. Poll failures are logged only; the loop keeps going.
func (w *Watcher) Run(ctx context.Context) {
	w.pollLogged(ctx)
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.pollLogged(ctx)
		}
	}
}

func (w *Watcher) pollLogged(ctx context.Context) {
	if err := w.Poll(ctx); err != nil {
		w.log.Warn().Err(err).Msg("low-stock poll failed")
	}
}

// Poll scans every store once. A call that arrives while another Poll is in
// flight is dropped, not queued.
func (w *Watcher) Poll(ctx context.Context) error {
	if !w.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer w.inFlight.Store(false)

	stores, err := w.stores.List(ctx)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}
	for _, store := range stores {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.pollStore(ctx, store); err != nil {
			w.log.Warn().Err(err).Str("store_id", store.ID).Msg("low-stock poll skipped store")
		}
	}
	return nil
}

func (w *Watcher) pollStore(ctx context.Context, store *entity.Store) error {
	if !w.alertsEnabled(ctx, store.ID) {
		return nil
	}

	admin, err := w.users.FindAdmin(ctx, store.ID)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		return nil
	}

	low, err := w.products.ListLowStock(ctx, store.ID)
	if err != nil {
		return fmt.Errorf("list low stock: %w", err)
	}

	cooldown := w.cooldownFor(ctx, store.ID)
	now := time.Now()
	for _, p := range low {
		if err := ctx.Err(); err != nil {
			// View is gone; stop before emitting further side effects.
			return err
		}
		if !w.shouldNotify(p, now, cooldown) {
			continue
		}
		w.markNotified(p.ID)
		if err := w.products.MarkNotified(ctx, p.ID, now); err != nil {
			w.log.Warn().Err(err).Str("product_id", p.ID).Msg("mark notified failed")
		}
		if err := w.notifs.Create(ctx, lowStockNotification(admin.ID, p, now)); err != nil {
			// The set stays marked: at-most-once beats at-least-once here.
			w.log.Warn().Err(err).Str("product_id", p.ID).Msg("create low-stock notification failed")
		}
	}
	return nil
}

// alertsEnabled reads the store's feature flag. Missing or malformed settings
// count as disabled.
func (w *Watcher) alertsEnabled(ctx context.Context, storeID string) bool {
	s, err := w.settings.Get(ctx, storeID, entity.SettingLowStockAlertsEnabled)
	if err != nil || s == nil {
		return false
	}
	enabled, err := strconv.ParseBool(s.Value)
	return err == nil && enabled
}

// cooldownFor returns the store's cooldown override, or the configured
// default when the setting is missing, malformed or negative.
func (w *Watcher) cooldownFor(ctx context.Context, storeID string) time.Duration {
	s, err := w.settings.Get(ctx, storeID, entity.SettingLowStockCooldownHours)
	if err != nil || s == nil {
		return w.cfg.Cooldown
	}
	hours, err := strconv.Atoi(s.Value)
	if err != nil || hours < 0 {
		return w.cfg.Cooldown
	}
	return time.Duration(hours) * time.Hour
}

// shouldNotify applies both de-duplication layers: the instance set and the
// persisted cooldown.
func (w *Watcher) shouldNotify(p *entity.Product, now time.Time, cooldown time.Duration) bool {
	w.mu.Lock()
	_, seen := w.notified[p.ID]
	w.mu.Unlock()
	if seen {
		return false
	}
	if cooldown > 0 && p.LastNotifiedAt != nil && now.Sub(*p.LastNotifiedAt) < cooldown {
		return false
	}
	return true
}

func (w *Watcher) markNotified(productID string) {
	w.mu.Lock()
	w.notified[productID] = struct{}{}
	w.mu.Unlock()
}

func lowStockNotification(userID string, p *entity.Product, now time.Time) *entity.Notification {
	return &entity.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  "تنبيه انخفاض المخزون",
		Message: fmt.Sprintf("المنتج %s وصل إلى %d قطعة والحد الأدنى %d",
			p.Name, p.Stock, p.MinStock),
		Type:      entity.NotificationWarning,
		Link:      "/products/" + p.ID,
		IsRead:    false,
		CreatedAt: now,
	}
}
