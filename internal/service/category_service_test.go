package service

import (
	"context"
	"testing"

	"github.com/govjobs/govjobs-backend/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateTrimsAndSlugs(t *testing.T) {
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())

	c, err := svc.Create(context.Background(), "Bank Jobs ")
	require.NoError(t, err)

	assert.Equal(t, "Bank Jobs", c.Name)
	assert.Equal(t, "bank-jobs", c.Slug)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCategoryCreateConflictOnSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())
	_, err := svc.Create(ctx, "Bank Jobs ")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "bank jobs")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoryCreateEmptySlug(t *testing.T) {
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "!!!")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "name")
}

func TestCategoryDeleteMalformedID(t *testing.T) {
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())

	assert.ErrorIs(t, svc.Delete(context.Background(), "not-a-uuid"), ErrNotFound)
}

func TestCategoryGetBySlugMissing(t *testing.T) {
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())

	_, err := svc.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(memory.New().Categories(), zerolog.Nop())

	added, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories), added)

	added, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 15)
	assert.Equal(t, "10th Jobs", list[0].Name)
}
