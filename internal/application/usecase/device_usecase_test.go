package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
)

type memDevices struct {
	repository.DeviceRepository

	devices map[string]*entity.Device
}

func (m *memDevices) Create(_ context.Context, d *entity.Device) error {
	m.devices[d.ID] = d
	return nil
}

func (m *memDevices) GetByID(_ context.Context, id string) (*entity.Device, error) {
	return m.devices[id], nil
}

type memCustomers struct {
	repository.CustomerRepository

	customers map[string]*entity.Customer
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return m.customers[id], nil
}

func newDeviceFixture(now time.Time) (*DeviceUseCase, *memDevices) {
	devices := &memDevices{devices: make(map[string]*entity.Device)}
	customers := &memCustomers{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", StoreID: "store-1", Name: "خالد"},
	}}
	uc := NewDeviceUseCase(devices, customers)
	uc.now = func() time.Time { return now }
	return uc, devices
}

func TestRegisterDevice_ComputesWarrantyEnd(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	uc, _ := newDeviceFixture(now)

	purchase := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	d, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID:     "c1",
		Name:           "هاتف",
		SerialNumber:   "SN-1",
		PurchaseDate:   purchase,
		WarrantyMonths: 12,
	})
	require.NoError(t, err)

	// Calendar arithmetic: Jan 31 + 12 months = Jan 31 next year.
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), d.WarrantyEnd)
	assert.True(t, d.WarrantyActive)
	assert.Equal(t, 321, d.DaysLeft)
}

func TestRegisterDevice_MonthOverflowNormalizes(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	uc, _ := newDeviceFixture(now)

	// Jan 31 + 1 month: Go normalizes Feb 31 to Mar 2 in a leap year.
	purchase := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	d, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID:     "c1",
		Name:           "هاتف",
		PurchaseDate:   purchase,
		WarrantyMonths: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), d.WarrantyEnd)
}

func TestRegisterDevice_ExpiredWarranty(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	uc, _ := newDeviceFixture(now)

	purchase := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	d, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID:     "c1",
		Name:           "هاتف",
		PurchaseDate:   purchase,
		WarrantyMonths: 6,
	})
	require.NoError(t, err)

	assert.False(t, d.WarrantyActive)
	assert.Zero(t, d.DaysLeft, "days left never goes negative")
}

func TestRegisterDevice_ZeroMonthsExpiresSameDay(t *testing.T) {
	purchase := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	uc, _ := newDeviceFixture(purchase)

	d, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID:     "c1",
		Name:           "هاتف",
		PurchaseDate:   purchase,
		WarrantyMonths: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, purchase, d.WarrantyEnd)
	assert.True(t, d.WarrantyActive, "warranty covers the end instant itself")
}

func TestRegisterDevice_UnknownCustomer(t *testing.T) {
	uc, _ := newDeviceFixture(time.Now())

	_, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID:     "ghost",
		Name:           "هاتف",
		PurchaseDate:   time.Now(),
		WarrantyMonths: 12,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterDevice_CustomerFromAnotherStore(t *testing.T) {
	uc, _ := newDeviceFixture(time.Now())

	_, err := uc.Register(context.Background(), "store-2", dto.RegisterDeviceRequest{
		CustomerID:     "c1",
		Name:           "هاتف",
		PurchaseDate:   time.Now(),
		WarrantyMonths: 12,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterDevice_Validation(t *testing.T) {
	uc, _ := newDeviceFixture(time.Now())

	_, err := uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID: "c1", Name: "", PurchaseDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing name")

	_, err = uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID: "c1", Name: "هاتف",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing purchase date")

	_, err = uc.Register(context.Background(), "store-1", dto.RegisterDeviceRequest{
		CustomerID: "c1", Name: "هاتف", PurchaseDate: time.Now(), WarrantyMonths: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative months")
}
