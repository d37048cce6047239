package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles one repository per table.
type Repositories struct {
	Admins         AdminRepository
	Categories     CategoryRepository
	Jobs           JobRepository
	Results        ResultRepository
	AdmitCards     AdmitCardRepository
	Syllabus       SyllabusRepository
	PreviousPapers PreviousPaperRepository
	Materials      MaterialRepository
	NewsTicker     NewsTickerRepository
	Dashboard      DashboardRepository
}

// NewPostgres returns pgx-backed repositories sharing pool.
func NewPostgres(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Admins:         NewAdminRepository(pool),
		Categories:     NewCategoryRepository(pool),
		Jobs:           NewJobRepository(pool),
		Results:        NewResultRepository(pool),
		AdmitCards:     NewAdmitCardRepository(pool),
		Syllabus:       NewSyllabusRepository(pool),
		PreviousPapers: NewPreviousPaperRepository(pool),
		Materials:      NewMaterialRepository(pool),
		NewsTicker:     NewNewsTickerRepository(pool),
		Dashboard:      NewDashboardRepository(pool),
	}
}
