package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type categoryRepo struct{ db *DB }

func (r *categoryRepo) List(_ context.Context) ([]model.Category, error) {
	return r.db.categories.list(nil, func(a, b model.Category) bool { return a.Name < b.Name }), nil
}

func (r *categoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	return r.db.categories.get(id)
}

func (r *categoryRepo) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	c, ok := r.db.categories.find(func(c model.Category) bool { return c.Slug == slug })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *categoryRepo) ExistsByNameOrSlug(_ context.Context, name, slug string) (bool, error) {
	_, ok := r.db.categories.find(func(c model.Category) bool { return c.Name == name || c.Slug == slug })
	return ok, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	if exists, _ := r.ExistsByNameOrSlug(ctx, c.Name, c.Slug); exists {
		return repository.ErrConflict
	}
	return r.db.categories.insert(c.ID, c, func(row *model.Category, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *categoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.db.categories.delete(id); err != nil {
		return err
	}
	r.db.jobs.deleteWhere(func(j model.Job) bool { return j.CategoryID == id })
	return nil
}
