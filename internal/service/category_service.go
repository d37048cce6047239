package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/govjobs/govjobs-backend/internal/slug"
	"github.com/rs/zerolog"
)

// DefaultCategories are created by cmd/seed on a fresh database.
var DefaultCategories = []string{
	"Admit Cards",
	"Results",
	"Syllabus",
	"Previous Papers",
	"Materials",
	"10th Jobs",
	"12th Jobs",
	"ITI Jobs",
	"Diploma Jobs",
	"Degree Jobs",
	"Engineering Jobs",
	"Railways",
	"Bank Jobs",
	"Defence Jobs",
	"Teaching Jobs",
}

// CategoryService handles category business logic.
type CategoryService struct {
	repo repository.CategoryRepository
	log  zerolog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log.With().Str("component", "category_service").Logger(),
	}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// GetBySlug returns the category with the given slug.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	return c, translate(err)
}

// Create trims name, derives its slug and inserts the category.
// A name or slug already in use yields ErrConflict.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "name must not be blank")
	}
	sl := slug.Make(name)
	if sl == "" {
		return nil, newValidationError("name", "name must contain at least one letter or digit")
	}

	exists, err := s.repo.ExistsByNameOrSlug(ctx, name, sl)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	c := &model.Category{ID: uuid.New(), Name: name, Slug: sl}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, translate(err)
	}

	s.log.Info().Str("category_id", c.ID.String()).Str("slug", c.Slug).Msg("Category created")
	return c, nil
}

// Delete removes a category and, through the foreign key, all of its jobs.
func (s *CategoryService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info().Str("category_id", id.String()).Msg("Category deleted")
	return nil
}

// SeedDefaults creates any of DefaultCategories that are missing and
// returns how many were added.
func (s *CategoryService) SeedDefaults(ctx context.Context) (int, error) {
	added := 0
	for _, name := range DefaultCategories {
		_, err := s.Create(ctx, name)
		switch {
		case err == nil:
			added++
		case errors.Is(err, ErrConflict):
		default:
			return added, err
		}
	}
	return added, nil
}
