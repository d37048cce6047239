package memory

import (
	"context"
	"time"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type adminRepo struct{ db *DB }

func (r *adminRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	a, ok := r.db.admins.find(func(a model.AdminUser) bool { return a.Username == username })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (r *adminRepo) Create(_ context.Context, a *model.AdminUser) error {
	if _, taken := r.db.admins.find(func(x model.AdminUser) bool { return x.Username == a.Username }); taken {
		return repository.ErrConflict
	}
	return r.db.admins.insert(a.ID, a, func(row *model.AdminUser, now time.Time) {
		row.CreatedAt = now
	})
}
