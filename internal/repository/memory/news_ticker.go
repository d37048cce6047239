package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type newsTickerRepo struct{ db *DB }

func (r *newsTickerRepo) List(_ context.Context, activeOnly bool) ([]model.NewsTickerItem, error) {
	var keep func(model.NewsTickerItem) bool
	if activeOnly {
		keep = func(n model.NewsTickerItem) bool { return n.IsActive }
	}
	return r.db.newsTicker.list(keep, func(a, b model.NewsTickerItem) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return newerFirst(a.CreatedAt, b.CreatedAt)
	}), nil
}

func (r *newsTickerRepo) GetByID(_ context.Context, id uuid.UUID) (*model.NewsTickerItem, error) {
	return r.db.newsTicker.get(id)
}

func (r *newsTickerRepo) Create(_ context.Context, item *model.NewsTickerItem) error {
	return r.db.newsTicker.insert(item.ID, item, func(row *model.NewsTickerItem, now time.Time) {
		row.CreatedAt = now
		row.UpdatedAt = now
	})
}

func (r *newsTickerRepo) Update(_ context.Context, id uuid.UUID, set *repository.UpdateSet) (*model.NewsTickerItem, error) {
	return r.db.newsTicker.update(id, set, func(n *model.NewsTickerItem, column string, v any) error {
		var err error
		switch column {
		case "content":
			n.Content, err = asString("news_ticker", column, v)
		case "is_active":
			n.IsActive, err = asBool("news_ticker", column, v)
		case "display_order":
			n.DisplayOrder, err = asInt("news_ticker", column, v)
		default:
			return notAllowed("news_ticker", column)
		}
		return err
	}, func(n *model.NewsTickerItem, now time.Time) {
		n.UpdatedAt = now
	})
}

func (r *newsTickerRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.db.newsTicker.delete(id)
}
