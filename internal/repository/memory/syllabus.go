package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type syllabusRepo struct{ db *DB }

func (r *syllabusRepo) List(_ context.Context) ([]model.Syllabus, error) {
	return r.db.syllabus.list(nil, func(a, b model.Syllabus) bool { return newerFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (r *syllabusRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Syllabus, error) {
	return r.db.syllabus.get(id)
}

func (r *syllabusRepo) Create(_ context.Context, s *model.Syllabus) error {
	return r.db.syllabus.insert(s.ID, s, func(row *model.Syllabus, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *syllabusRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.Syllabus, error) {
	return r.db.syllabus.update(id, set, func(s *model.Syllabus, column string, v any) error {
		var err error
		switch column {
		case "exam_name":
			s.ExamName, err = asString("syllabus", column, v)
		case "organization":
			s.Organization, err = asString("syllabus", column, v)
		case "download_url":
			s.DownloadURL, err = asNullString("syllabus", column, v)
		default:
			return notAllowed("syllabus", column)
		}
		return err
	}, nil)
}

func (r *syllabusRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.syllabus.delete(id)
}
