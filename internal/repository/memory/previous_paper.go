package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type previousPaperRepo struct{ db *DB }

func (r *previousPaperRepo) List(_ context.Context) ([]model.PreviousPaper, error) {
	return r.db.previousPapers.list(nil, func(a, b model.PreviousPaper) bool {
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return newerFirst(a.CreatedAt, b.CreatedAt)
	}), nil
}

func (r *previousPaperRepo) GetByID(_ context.Context, id uuid.UUID) (*model.PreviousPaper, error) {
	return r.db.previousPapers.get(id)
}

func (r *previousPaperRepo) Create(_ context.Context, p *model.PreviousPaper) error {
	return r.db.previousPapers.insert(p.ID, p, func(row *model.PreviousPaper, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *previousPaperRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.PreviousPaper, error) {
	return r.db.previousPapers.update(id, set, func(p *model.PreviousPaper, column string, v any) error {
		var err error
		switch column {
		case "exam_name":
			p.ExamName, err = asString("previous_papers", column, v)
		case "organization":
			p.Organization, err = asString("previous_papers", column, v)
		case "year":
			p.Year, err = asInt("previous_papers", column, v)
		case "paper_type":
			p.PaperType, err = asString("previous_papers", column, v)
		case "download_url":
			p.DownloadURL, err = asNullString("previous_papers", column, v)
		default:
			return notAllowed("previous_papers", column)
		}
		return err
	}, nil)
}

func (r *previousPaperRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.previousPapers.delete(id)
}
