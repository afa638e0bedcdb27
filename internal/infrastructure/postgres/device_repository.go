package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

const deviceColumns = `id, store_id, customer_id, name, serial_number, purchase_date, warranty_months, warranty_end, notes, created_at, updated_at`

// DeviceRepo DeviceRepository adapter over PostgreSQL.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository builds the device persistence adapter.
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

// Create persists a device.
func (r *DeviceRepo) Create(ctx context.Context, device *entity.Device) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO devices (`+deviceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		device.ID, device.StoreID, device.CustomerID, device.Name, device.SerialNumber,
		device.PurchaseDate, device.WarrantyMonths, device.WarrantyEnd, device.Notes,
		device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID returns a device by ID, nil when absent.
func (r *DeviceRepo) GetByID(ctx context.Context, id string) (*entity.Device, error) {
	d, err := scanDevice(r.q.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}
	return d, nil
}

// Update rewrites the mutable columns of a device.
func (r *DeviceRepo) Update(ctx context.Context, device *entity.Device) error {
	_, err := r.q.Exec(ctx, `
		UPDATE devices SET name = $2, serial_number = $3, notes = $4, updated_at = $5
		WHERE id = $1`,
		device.ID, device.Name, device.SerialNumber, device.Notes, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// ListByStore lists the store's devices with pagination.
func (r *DeviceRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Device, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return scanDevices(rows)
}

// ListByCustomer returns every device registered to a customer.
func (r *DeviceRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Device, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("list devices by customer: %w", err)
	}
	return scanDevices(rows)
}

// Delete removes a device by ID.
func (r *DeviceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}

func scanDevice(row pgx.Row) (*entity.Device, error) {
	var d entity.Device
	err := row.Scan(&d.ID, &d.StoreID, &d.CustomerID, &d.Name, &d.SerialNumber,
		&d.PurchaseDate, &d.WarrantyMonths, &d.WarrantyEnd, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDevices(rows pgx.Rows) ([]*entity.Device, error) {
	defer rows.Close()
	var list []*entity.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
