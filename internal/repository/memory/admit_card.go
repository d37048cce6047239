package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type admitCardRepo struct{ db *DB }

func (r *admitCardRepo) List(_ context.Context) ([]model.AdmitCard, error) {
	return r.db.admitCards.list(nil, func(a, b model.AdmitCard) bool {
		if !a.ExamDate.Equal(b.ExamDate.Time) {
			return a.ExamDate.After(b.ExamDate.Time)
		}
		return newerFirst(a.CreatedAt, b.CreatedAt)
	}), nil
}

func (r *admitCardRepo) GetByID(_ context.Context, id uuid.UUID) (*model.AdmitCard, error) {
	return r.db.admitCards.get(id)
}

func (r *admitCardRepo) Create(_ context.Context, card *model.AdmitCard) error {
	return r.db.admitCards.insert(card.ID, card, func(row *model.AdmitCard, now time.Time) {
		row.CreatedAt = now
	})
}

func (r *admitCardRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.AdmitCard, error) {
	return r.db.admitCards.update(id, set, applyAdmitCard, nil)
}

func applyAdmitCard(a *model.AdmitCard, column string, v any) error {
	var err error
	switch column {
	case "exam_name":
		a.ExamName, err = asString("admit_cards", column, v)
	case "organization":
		a.Organization, err = asString("admit_cards", column, v)
	case "exam_date":
		var t time.Time
		t, err = asTime("admit_cards", column, v)
		a.ExamDate = model.Date{Time: t}
	case "status":
		var s string
		s, err = asString("admit_cards", column, v)
		a.Status = model.AdmitCardStatus(s)
	case "download_url":
		a.DownloadURL, err = asNullString("admit_cards", column, v)
	default:
		return notAllowed("admit_cards", column)
	}
	return err
}

func (r *admitCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.admitCards.delete(id)
}
