package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	// ExistsByNameOrSlug reports whether any category already uses name or slug.
	ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
	Create(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, name, slug, created_at`

func scanCategory(row pgx.Row) (*model.Category, error) {
	c := &model.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
}

func (r *categoryRepository) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 OR slug = $2)`,
		name, slug,
	).Scan(&exists)
	return exists, err
}

// Create inserts c. The unique constraints still guard against a concurrent
// insert that slipped past ExistsByNameOrSlug.
func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) RETURNING created_at`,
		c.ID, c.Name, c.Slug,
	).Scan(&c.CreatedAt)
	return mapError(err)
}

// Delete removes the category; its jobs go with it through ON DELETE CASCADE.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id))
}
