package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AdminService handles admin login and account provisioning.
type AdminService struct {
	adminRepo repository.AdminRepository
	auth      *AuthService
	log       zerolog.Logger

	// dummyHash is compared against when the username is unknown so both
	// failure paths spend the same bcrypt time.
	dummyHash string
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repository.AdminRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	dummy, _ := auth.HashPassword(uuid.NewString())
	return &AdminService{
		adminRepo: adminRepo,
		auth:      auth,
		log:       log.With().Str("component", "admin_service").Logger(),
		dummyHash: dummy,
	}
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials.
func (s *AdminService) Login(ctx context.Context, username, password string) (*model.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.auth.CheckPassword(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.IssueAdminToken(admin.ID.String(), admin.Username)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", admin.ID.String()).Msg("Admin logged in")
	return &model.AdminLoginResponse{
		Token: token,
		Admin: model.AdminIdentity{ID: admin.ID.String(), Username: admin.Username},
	}, nil
}

// Create provisions a new admin account. A taken username yields ErrConflict.
func (s *AdminService) Create(ctx context.Context, username, password string) (*model.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, newValidationError("username", "username must not be blank")
	}
	if len(password) < 6 {
		return nil, newValidationError("password", "password must be at least 6 characters")
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, translate(err)
	}
	return admin, nil
}

// EnsureAdmin creates the admin unless the username already exists.
// Reports whether a new account was created.
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	if _, err := s.Create(ctx, username, password); err != nil {
		if errors.Is(err, ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
