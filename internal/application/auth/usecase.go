package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/domain"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
	"github.com/dukkanhq/dukkan-api/internal/domain/repository"
	"github.com/dukkanhq/dukkan-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication: store registration, admin login, worker shift
// login and worker management.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, storeRepo repository.StoreRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, storeRepo: storeRepo, jwtCfg: jwtCfg}
}

// RegisterAdmin creates a store together with its admin account and returns a
// ready session. Fails with ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.RegisterAdminRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" || in.StoreName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.StoreName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      store.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.session(user)
}

// LoginAdmin verifies email/password and returns a token + user.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleAdmin {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.session(user)
}

// LoginWorker signs a shift worker in by store, worker code and PIN.
func (uc *AuthUseCase) LoginWorker(ctx context.Context, in dto.WorkerLoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByWorkerCode(ctx, in.StoreID, in.WorkerCode)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleWorker {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.PIN)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.session(user)
}

// CreateWorker registers a shift worker account (admin only). The PIN is
// bcrypt-hashed like any password.
func (uc *AuthUseCase) CreateWorker(ctx context.Context, storeID string, in dto.CreateWorkerRequest) (*dto.UserResponse, error) {
	if in.WorkerCode == "" || in.PIN == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByWorkerCode(ctx, storeID, in.WorkerCode)
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      storeID,
		WorkerCode:   in.WorkerCode,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleWorker,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListWorkers returns the store's worker accounts.
func (uc *AuthUseCase) ListWorkers(ctx context.Context, storeID string) ([]dto.UserResponse, error) {
	workers, err := uc.userRepo.ListWorkers(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, *toUserResponse(w))
	}
	return out, nil
}

func (uc *AuthUseCase) session(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.StoreID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		StoreID:    u.StoreID,
		Email:      u.Email,
		WorkerCode: u.WorkerCode,
		Name:       u.Name,
		Role:       u.Role,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
