package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type jobRepo struct{ db *DB }

func (r *jobRepo) List(_ context.Context, filter model.JobFilter) ([]model.Job, error) {
	var keep func(model.Job) bool
	if filter.CategoryID != nil {
		id := *filter.CategoryID
		keep = func(j model.Job) bool { return j.CategoryID == id }
	}
	return r.db.jobs.list(keep, func(a, b model.Job) bool { return newerFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (r *jobRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	return r.db.jobs.get(id)
}

func (r *jobRepo) Create(_ context.Context, j *model.Job) error {
	if _, err := r.db.categories.get(j.CategoryID); err != nil {
		return fmt.Errorf("%w: jobs_category_id_fkey", repository.ErrReferenceMissing)
	}
	return r.db.jobs.insert(j.ID, j, func(row *model.Job, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *jobRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.Job, error) {
	return r.db.jobs.update(id, set, r.apply, nil)
}

func (r *jobRepo) apply(j *model.Job, column string, v any) error {
	var err error
	switch column {
	case "category_id":
		id, ok := v.(uuid.UUID)
		if !ok {
			return fmt.Errorf("jobs.category_id: unexpected %T", v)
		}
		if _, err := r.db.categories.get(id); err != nil {
			return fmt.Errorf("%w: jobs_category_id_fkey", repository.ErrReferenceMissing)
		}
		j.CategoryID = id
	case "organization":
		j.Organization, err = asString("jobs", column, v)
	case "post_name":
		j.PostName, err = asString("jobs", column, v)
	case "vacancies":
		j.Vacancies, err = asString("jobs", column, v)
	case "qualification":
		j.Qualification, err = asString("jobs", column, v)
	case "last_date":
		var t time.Time
		t, err = asTime("jobs", column, v)
		j.LastDate = model.Date{Time: t}
	case "full_details_url":
		j.FullDetailsURL, err = asNullString("jobs", column, v)
	case "notification_url":
		j.NotificationURL, err = asNullString("jobs", column, v)
	case "apply_url":
		j.ApplyURL, err = asNullString("jobs", column, v)
	default:
		return notAllowed("jobs", column)
	}
	return err
}

func (r *jobRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.jobs.delete(id)
}
