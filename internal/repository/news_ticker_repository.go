package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsTickerRepository interface {
	// List returns items by display_order; activeOnly hides inactive ones.
	List(ctx context.Context, activeOnly bool) ([]model.NewsTickerItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.NewsTickerItem, error)
	Create(ctx context.Context, item *model.NewsTickerItem) error
	// Update always refreshes updated_at alongside the supplied columns.
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.NewsTickerItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsTickerRepository struct {
	db *pgxpool.Pool
}

func NewNewsTickerRepository(db *pgxpool.Pool) NewsTickerRepository {
	return &newsTickerRepository{db: db}
}

const newsTickerColumns = `id, content, is_active, display_order, created_at, updated_at`

var newsTickerUpdates = newUpdateTable("news_ticker", newsTickerColumns, true,
	"content", "is_active", "display_order",
)

func scanNewsTicker(row pgx.Row) (*model.NewsTickerItem, error) {
	n := &model.NewsTickerItem{}
	err := row.Scan(&n.ID, &n.Content, &n.IsActive, &n.DisplayOrder, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return n, nil
}

func (r *newsTickerRepository) List(ctx context.Context, activeOnly bool) ([]model.NewsTickerItem, error) {
	query := `SELECT ` + newsTickerColumns + ` FROM news_ticker`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsTickerItem, 0)
	for rows.Next() {
		n, err := scanNewsTicker(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

func (r *newsTickerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.NewsTickerItem, error) {
	return scanNewsTicker(r.db.QueryRow(ctx, `SELECT `+newsTickerColumns+` FROM news_ticker WHERE id = $1`, id))
}

func (r *newsTickerRepository) Create(ctx context.Context, item *model.NewsTickerItem) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO news_ticker (id, content, is_active, display_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		item.ID, item.Content, item.IsActive, item.DisplayOrder,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	return mapError(err)
}

func (r *newsTickerRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.NewsTickerItem, error) {
	query, args, err := newsTickerUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanNewsTicker(r.db.QueryRow(ctx, query, args...))
}

func (r *newsTickerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM news_ticker WHERE id = $1`, id))
}
