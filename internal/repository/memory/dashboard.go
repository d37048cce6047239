package memory

import (
	"context"

	"github.com/govjobs/govjobs-backend/internal/model"
)

type dashboardRepo struct{ db *DB }

func (r *dashboardRepo) Counts(_ context.Context) (*model.DashboardCounts, error) {
	return &model.DashboardCounts{
		Categories:       r.db.categories.count(nil),
		Jobs:             r.db.jobs.count(nil),
		Results:          r.db.results.count(nil),
		AdmitCards:       r.db.admitCards.count(nil),
		Syllabus:         r.db.syllabus.count(nil),
		PreviousPapers:   r.db.previousPapers.count(nil),
		Materials:        r.db.materials.count(nil),
		NewsTickerActive: r.db.newsTicker.count(func(n model.NewsTickerItem) bool { return n.IsActive }),
		NewsTickerTotal:  r.db.newsTicker.count(nil),
	}, nil
}
