package memory

import (
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

// DB holds one table per entity. Repositories obtained from the same DB see
// each other's writes, so category deletes cascade to jobs.
type DB struct {
	admins         *store[model.AdminUser]
	categories     *store[model.Category]
	jobs           *store[model.Job]
	results        *store[model.Result]
	admitCards     *store[model.AdmitCard]
	syllabus       *store[model.Syllabus]
	previousPapers *store[model.PreviousPaper]
	materials      *store[model.Material]
	newsTicker     *store[model.NewsTickerItem]
}

// New returns an empty database.
func New() *DB {
	return &DB{
		admins:         newStore[model.AdminUser](),
		categories:     newStore[model.Category](),
		jobs:           newStore[model.Job](),
		results:        newStore[model.Result](),
		admitCards:     newStore[model.AdmitCard](),
		syllabus:       newStore[model.Syllabus](),
		previousPapers: newStore[model.PreviousPaper](),
		materials:      newStore[model.Material](),
		newsTicker:     newStore[model.NewsTickerItem](),
	}
}

func (db *DB) Admins() repository.AdminRepository                 { return &adminRepo{db} }
func (db *DB) Categories() repository.CategoryRepository          { return &categoryRepo{db} }
func (db *DB) Jobs() repository.JobRepository                     { return &jobRepo{db} }
func (db *DB) Results() repository.ResultRepository               { return &resultRepo{db} }
func (db *DB) AdmitCards() repository.AdmitCardRepository         { return &admitCardRepo{db} }
func (db *DB) Syllabus() repository.SyllabusRepository            { return &syllabusRepo{db} }
func (db *DB) PreviousPapers() repository.PreviousPaperRepository { return &previousPaperRepo{db} }
func (db *DB) Materials() repository.MaterialRepository           { return &materialRepo{db} }
func (db *DB) NewsTicker() repository.NewsTickerRepository        { return &newsTickerRepo{db} }
func (db *DB) Dashboard() repository.DashboardRepository          { return &dashboardRepo{db} }

// Repositories returns every repository backed by db.
func (db *DB) Repositories() repository.Repositories {
	return repository.Repositories{
		Admins:         db.Admins(),
		Categories:     db.Categories(),
		Jobs:           db.Jobs(),
		Results:        db.Results(),
		AdmitCards:     db.AdmitCards(),
		Syllabus:       db.Syllabus(),
		PreviousPapers: db.PreviousPapers(),
		Materials:      db.Materials(),
		NewsTicker:     db.NewsTicker(),
		Dashboard:      db.Dashboard(),
	}
}
