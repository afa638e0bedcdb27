package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/auth"
	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
	pkgjwt "github.com/dukkanhq/dukkan-api/pkg/jwt"
)

type memUsers struct {
	repository.UserRepository

	users map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByWorkerCode(_ context.Context, storeID, code string) (*entity.User, error) {
	for _, u := range m.users {
		if u.StoreID == storeID && u.WorkerCode == code {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListWorkers(_ context.Context, storeID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if u.StoreID == storeID && u.Role == entity.RoleWorker {
			out = append(out, u)
		}
	}
	return out, nil
}

type memStores struct {
	repository.StoreRepository

	stores map[string]*entity.Store
}

func (m *memStores) Create(_ context.Context, s *entity.Store) error {
	m.stores[s.ID] = s
	return nil
}

func newAuthFixture() (*auth.AuthUseCase, *memUsers, *memStores) {
	users := &memUsers{users: make(map[string]*entity.User)}
	stores := &memStores{stores: make(map[string]*entity.Store)}
	uc := auth.NewAuthUseCase(users, stores, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "dukkan-api-test",
	})
	return uc, users, stores
}

func TestRegisterAdmin_CreatesStoreAndSession(t *testing.T) {
	uc, users, stores := newAuthFixture()

	session, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		StoreName: "دكان الحي",
		Email:     "owner@example.com",
		Password:  "secret-password",
		Name:      "أحمد",
	})
	require.NoError(t, err)

	assert.Len(t, stores.stores, 1)
	assert.Len(t, users.users, 1)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)
	assert.Equal(t, "أحمد", session.User.Name)
	assert.NotEmpty(t, session.User.StoreID)

	// The token must carry the fresh identifiers.
	userID, storeID, role, err := pkgjwt.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
	assert.Equal(t, session.User.StoreID, storeID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegisterAdmin_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	req := dto.RegisterAdminRequest{StoreName: "دكان", Email: "owner@example.com", Password: "secret-password"}
	_, err := uc.RegisterAdmin(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.RegisterAdmin(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginAdmin_RoundTrip(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		StoreName: "دكان", Email: "owner@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	session, err := uc.LoginAdmin(context.Background(), dto.AdminLoginRequest{
		Email: "owner@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	_, err = uc.LoginAdmin(context.Background(), dto.AdminLoginRequest{
		Email: "owner@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginAdmin(context.Background(), dto.AdminLoginRequest{
		Email: "nobody@example.com", Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestWorkerFlow_CreateAndLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()

	admin, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		StoreName: "دكان", Email: "owner@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	storeID := admin.User.StoreID

	worker, err := uc.CreateWorker(context.Background(), storeID, dto.CreateWorkerRequest{
		Name: "سارة", WorkerCode: "W01", PIN: "4321",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, worker.Role)
	assert.Equal(t, "W01", worker.WorkerCode)

	session, err := uc.LoginWorker(context.Background(), dto.WorkerLoginRequest{
		StoreID: storeID, WorkerCode: "W01", PIN: "4321",
	})
	require.NoError(t, err)
	_, _, role, err := pkgjwt.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, role)

	_, err = uc.LoginWorker(context.Background(), dto.WorkerLoginRequest{
		StoreID: storeID, WorkerCode: "W01", PIN: "9999",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginWorker(context.Background(), dto.WorkerLoginRequest{
		StoreID: storeID, WorkerCode: "W02", PIN: "4321",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateWorker_DuplicateCode(t *testing.T) {
	uc, _, _ := newAuthFixture()

	req := dto.CreateWorkerRequest{Name: "سارة", WorkerCode: "W01", PIN: "4321"}
	_, err := uc.CreateWorker(context.Background(), "store-1", req)
	require.NoError(t, err)

	_, err = uc.CreateWorker(context.Background(), "store-1", req)
	assert.ErrorIs(t, err, domain.ErrCodeAlreadyExists)

	// The same code in another store is fine.
	_, err = uc.CreateWorker(context.Background(), "store-2", req)
	assert.NoError(t, err)
}

func TestListWorkers_ExcludesAdmin(t *testing.T) {
	uc, _, _ := newAuthFixture()

	admin, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		StoreName: "دكان", Email: "owner@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	storeID := admin.User.StoreID

	_, err = uc.CreateWorker(context.Background(), storeID, dto.CreateWorkerRequest{Name: "سارة", WorkerCode: "W01", PIN: "4321"})
	require.NoError(t, err)

	workers, err := uc.ListWorkers(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, "W01", workers[0].WorkerCode)
}
