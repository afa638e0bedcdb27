package entity

import "time"

// Well-known setting keys.
const (
	SettingLowStockAlertsEnabled = "low_stock_alerts_enabled"
	SettingLowStockCooldownHours = "low_stock_cooldown_hours"
)

// Setting is one per-store key/value configuration entry.
type Setting struct {
	StoreID   string
	Key       string
	Value     string
	UpdatedAt time.Time
}
