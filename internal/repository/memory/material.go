package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type materialRepo struct{ db *DB }

func (r *materialRepo) List(_ context.Context) ([]model.Material, error) {
	return r.db.materials.list(nil, func(a, b model.Material) bool { return newerFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (r *materialRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	return r.db.materials.get(id)
}

func (r *materialRepo) Create(_ context.Context, m *model.Material) error {
	return r.db.materials.insert(m.ID, m, func(row *model.Material, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *materialRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.Material, error) {
	return r.db.materials.update(id, set, func(m *model.Material, column string, v any) error {
		var err error
		switch column {
		case "organization":
			m.Organization, err = asString("materials", column, v)
		case "subject":
			m.Subject, err = asString("materials", column, v)
		case "download_url":
			m.DownloadURL, err = asNullString("materials", column, v)
		default:
			return notAllowed("materials", column)
		}
		return err
	}, nil)
}

func (r *materialRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.materials.delete(id)
}
