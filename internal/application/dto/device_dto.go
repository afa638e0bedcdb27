package dto

import "time"

// RegisterDeviceRequest body for POST /api/devices.
type RegisterDeviceRequest struct {
	CustomerID     string    `json:"customer_id"`
	Name           string    `json:"name"`
	SerialNumber   string    `json:"serial_number"`
	PurchaseDate   time.Time `json:"purchase_date"`
	WarrantyMonths int       `json:"warranty_months"`
	Notes          string    `json:"notes"`
}

// DeviceResponse device representation with derived warranty status.
type DeviceResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	Name           string    `json:"name"`
	SerialNumber   string    `json:"serial_number"`
	PurchaseDate   time.Time `json:"purchase_date"`
	WarrantyMonths int       `json:"warranty_months"`
	WarrantyEnd    time.Time `json:"warranty_end"`
	WarrantyActive bool      `json:"warranty_active"`
	DaysLeft       int       `json:"days_left"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// DeviceListResponse paginated device list.
type DeviceListResponse struct {
	Items []DeviceResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
