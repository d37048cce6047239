package repository

import (
	"context"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository is the credential store consulted at login.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Create(ctx context.Context, a *model.AdminUser) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a pgx-backed AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

// GetByUsername retrieves an admin by exact username.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	a := &model.AdminUser{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

// Create inserts a new admin. A taken username yields ErrConflict.
func (r *adminRepository) Create(ctx context.Context, a *model.AdminUser) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admin_users (id, username, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		a.ID, a.Username, a.PasswordHash,
	).Scan(&a.CreatedAt)
	return mapError(err)
}
