package repository

import (
	"context"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository reads the admin dashboard figures.
type DashboardRepository interface {
	Counts(ctx context.Context) (*model.DashboardCounts, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a pgx-backed DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

// Counts retrieves every record count in one round trip.
func (r *dashboardRepository) Counts(ctx context.Context) (*model.DashboardCounts, error) {
	c := &model.DashboardCounts{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM results),
			(SELECT COUNT(*) FROM admit_cards),
			(SELECT COUNT(*) FROM syllabus),
			(SELECT COUNT(*) FROM previous_papers),
			(SELECT COUNT(*) FROM materials),
			(SELECT COUNT(*) FROM news_ticker WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM news_ticker)`,
	).Scan(&c.Categories, &c.Jobs, &c.Results, &c.AdmitCards, &c.Syllabus,
		&c.PreviousPapers, &c.Materials, &c.NewsTickerActive, &c.NewsTickerTotal)
	if err != nil {
		return nil, err
	}
	return c, nil
}
