package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	jobs       *JobService
	categories *CategoryService
	bank       *model.Category
	railway    *model.Category
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	db := memory.New()
	f := &jobFixture{
		jobs:       NewJobService(db.Jobs(), db.Categories(), zerolog.Nop()),
		categories: NewCategoryService(db.Categories(), zerolog.Nop()),
	}
	var err error
	f.bank, err = f.categories.Create(context.Background(), "Bank Jobs")
	require.NoError(t, err)
	f.railway, err = f.categories.Create(context.Background(), "Railways")
	require.NoError(t, err)
	return f
}

func (f *jobFixture) create(t *testing.T, categoryID uuid.UUID, post string) *model.Job {
	t.Helper()
	j, err := f.jobs.Create(context.Background(), model.CreateJobRequest{
		CategoryID:   categoryID.String(),
		Organization: "SBI",
		PostName:     post,
	})
	require.NoError(t, err)
	return j
}

func strPtr(s string) *string { return &s }

func TestJobCreateDefaults(t *testing.T) {
	f := newJobFixture(t)
	f.jobs.now = func() time.Time { return time.Date(2025, 7, 14, 18, 0, 0, 0, time.Local) }

	j, err := f.jobs.Create(context.Background(), model.CreateJobRequest{
		CategoryID:   f.bank.ID.String(),
		Organization: "SBI",
		PostName:     "Probationary Officer",
		ApplyURL:     strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Various", j.Vacancies)
	assert.Equal(t, "As per notification", j.Qualification)
	assert.Equal(t, "2025-07-14", j.LastDate.String())
	assert.Nil(t, j.ApplyURL)
	assert.Equal(t, f.bank.ID, j.CategoryID)
}

func TestJobCreateKeepsSubmittedValues(t *testing.T) {
	f := newJobFixture(t)

	j, err := f.jobs.Create(context.Background(), model.CreateJobRequest{
		CategoryID:     f.bank.ID.String(),
		Organization:   "IBPS",
		PostName:       "Clerk",
		Vacancies:      "4045",
		Qualification:  "Graduate",
		LastDate:       "2025-08-01",
		FullDetailsURL: strPtr("https://example.com/ibps"),
	})
	require.NoError(t, err)

	got, err := f.jobs.Get(context.Background(), j.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "4045", got.Vacancies)
	assert.Equal(t, "Graduate", got.Qualification)
	assert.Equal(t, "2025-08-01", got.LastDate.String())
	assert.Equal(t, "https://example.com/ibps", *got.FullDetailsURL)
}

func TestJobCreateInvalidCategory(t *testing.T) {
	f := newJobFixture(t)

	for _, cat := range []string{uuid.NewString(), "not-a-uuid"} {
		_, err := f.jobs.Create(context.Background(), model.CreateJobRequest{
			CategoryID: cat, Organization: "SBI", PostName: "PO",
		})
		assert.ErrorIs(t, err, ErrInvalidCategory, cat)
	}
}

func TestJobListFilters(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	first := f.create(t, f.bank.ID, "PO")
	second := f.create(t, f.bank.ID, "Clerk")
	rail := f.create(t, f.railway.ID, "Loco Pilot")

	all, err := f.jobs.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, rail.ID, all[0].ID)

	byID, err := f.jobs.List(ctx, f.bank.ID.String(), "railways")
	require.NoError(t, err)
	require.Len(t, byID, 2)
	assert.Equal(t, second.ID, byID[0].ID)
	assert.Equal(t, first.ID, byID[1].ID)

	bySlug, err := f.jobs.List(ctx, "", "railways")
	require.NoError(t, err)
	require.Len(t, bySlug, 1)
	assert.Equal(t, rail.ID, bySlug[0].ID)

	unknownSlug, err := f.jobs.List(ctx, "", "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, unknownSlug, 3)

	malformed, err := f.jobs.List(ctx, "abc", "")
	require.NoError(t, err)
	assert.NotNil(t, malformed)
	assert.Empty(t, malformed)
}

func TestJobUpdate(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.create(t, f.bank.ID, "PO")

	updated, err := f.jobs.Update(ctx, j.ID.String(), model.UpdateJobRequest{
		Vacancies: strPtr("500"),
		LastDate:  strPtr("2025-12-31"),
	})
	require.NoError(t, err)

	assert.Equal(t, "500", updated.Vacancies)
	assert.Equal(t, "2025-12-31", updated.LastDate.String())
	assert.Equal(t, "PO", updated.PostName)
	assert.Equal(t, j.CreatedAt, updated.CreatedAt)
}

func TestJobUpdateErrors(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.create(t, f.bank.ID, "PO")

	_, err := f.jobs.Update(ctx, j.ID.String(), model.UpdateJobRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	_, err = f.jobs.Update(ctx, j.ID.String(), model.UpdateJobRequest{PostName: strPtr("  ")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "post_name")

	_, err = f.jobs.Update(ctx, j.ID.String(), model.UpdateJobRequest{LastDate: strPtr("31-12-2025")})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "last_date")

	_, err = f.jobs.Update(ctx, j.ID.String(), model.UpdateJobRequest{CategoryID: strPtr(uuid.NewString())})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = f.jobs.Update(ctx, uuid.NewString(), model.UpdateJobRequest{PostName: strPtr("Clerk")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.jobs.Update(ctx, "42", model.UpdateJobRequest{PostName: strPtr("Clerk")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDelete(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.create(t, f.bank.ID, "PO")

	require.NoError(t, f.jobs.Delete(ctx, j.ID.String()))
	assert.ErrorIs(t, f.jobs.Delete(ctx, j.ID.String()), ErrNotFound)

	_, err := f.jobs.Get(ctx, j.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletingCategoryRemovesItsJobs(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.create(t, f.bank.ID, "PO")
	f.create(t, f.railway.ID, "Loco Pilot")

	require.NoError(t, f.categories.Delete(ctx, f.bank.ID.String()))

	_, err := f.jobs.Get(ctx, j.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	remaining, err := f.jobs.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
