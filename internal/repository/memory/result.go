package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type resultRepo struct{ db *DB }

func (r *resultRepo) List(_ context.Context) ([]model.Result, error) {
	return r.db.results.list(nil, func(a, b model.Result) bool {
		if !a.ResultDate.Equal(b.ResultDate.Time) {
			return a.ResultDate.After(b.ResultDate.Time)
		}
		return newerFirst(a.CreatedAt, b.CreatedAt)
	}), nil
}

func (r *resultRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Result, error) {
	return r.db.results.get(id)
}

func (r *resultRepo) Create(_ context.Context, res *model.Result) error {
	return r.db.results.insert(res.ID, res, func(row *model.Result, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *resultRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.Result, error) {
	return r.db.results.update(id, set, applyResult, nil)
}

func applyResult(res *model.Result, column string, v any) error {
	var err error
	switch column {
	case "exam_name":
		res.ExamName, err = asString("results", column, v)
	case "organization":
		res.Organization, err = asString("results", column, v)
	case "result_date":
		var t time.Time
		t, err = asTime("results", column, v)
		res.ResultDate = model.Date{Time: t}
	case "status":
		var s string
		s, err = asString("results", column, v)
		res.Status = model.ResultStatus(s)
	case "download_url":
		res.DownloadURL, err = asNullString("results", column, v)
	default:
		return notAllowed("results", column)
	}
	return err
}

func (r *resultRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.results.delete(id)
}
