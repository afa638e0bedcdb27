package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

// DeviceUseCase registers customer devices and serves their derived warranty
// status. WarrantyEnd is fixed at registration: purchase date plus the
// warranty months, calendar arithmetic.
type DeviceUseCase struct {
	repo      repository.DeviceRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewDeviceUseCase builds the use case.
func NewDeviceUseCase(repo repository.DeviceRepository, customers repository.CustomerRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, customers: customers, now: time.Now}
}

// Register records a device for a customer.
func (uc *DeviceUseCase) Register(ctx context.Context, storeID string, in dto.RegisterDeviceRequest) (*dto.DeviceResponse, error) {
	if in.CustomerID == "" || in.Name == "" || in.WarrantyMonths < 0 || in.PurchaseDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	device := &entity.Device{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		CustomerID:     in.CustomerID,
		Name:           in.Name,
		SerialNumber:   in.SerialNumber,
		PurchaseDate:   in.PurchaseDate,
		WarrantyMonths: in.WarrantyMonths,
		WarrantyEnd:    in.PurchaseDate.AddDate(0, in.WarrantyMonths, 0),
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, device); err != nil {
		return nil, err
	}
	return uc.toDeviceResponse(device), nil
}

// GetByID returns one device with warranty status, nil when absent.
func (uc *DeviceUseCase) GetByID(ctx context.Context, id string) (*dto.DeviceResponse, error) {
	device, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, nil
	}
	return uc.toDeviceResponse(device), nil
}

// List returns the store's devices with pagination.
func (uc *DeviceUseCase) List(ctx context.Context, storeID string, limit, offset int) (*dto.DeviceListResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toDeviceResponse(d))
	}
	return &dto.DeviceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByCustomer returns every device registered to a customer.
func (uc *DeviceUseCase) ListByCustomer(ctx context.Context, customerID string) ([]dto.DeviceResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toDeviceResponse(d))
	}
	return items, nil
}

// Delete removes a device by ID.
func (uc *DeviceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *DeviceUseCase) toDeviceResponse(d *entity.Device) *dto.DeviceResponse {
	now := uc.now()
	return &dto.DeviceResponse{
		ID:             d.ID,
		CustomerID:     d.CustomerID,
		Name:           d.Name,
		SerialNumber:   d.SerialNumber,
		PurchaseDate:   d.PurchaseDate,
		WarrantyMonths: d.WarrantyMonths,
		WarrantyEnd:    d.WarrantyEnd,
		WarrantyActive: d.WarrantyActive(now),
		DaysLeft:       d.WarrantyDaysLeft(now),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
	}
}
