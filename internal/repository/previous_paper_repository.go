package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreviousPaperRepository interface {
	List(ctx context.Context) ([]model.PreviousPaper, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PreviousPaper, error)
	Create(ctx context.Context, p *model.PreviousPaper) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.PreviousPaper, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type previousPaperRepository struct {
	db *pgxpool.Pool
}

func NewPreviousPaperRepository(db *pgxpool.Pool) PreviousPaperRepository {
	return &previousPaperRepository{db: db}
}

const previousPaperColumns = `id, exam_name, organization, year, paper_type, download_url, created_at`

var previousPaperUpdates = newUpdateTable("previous_papers", previousPaperColumns, false,
	"exam_name", "organization", "year", "paper_type", "download_url",
)

func scanPreviousPaper(row pgx.Row) (*model.PreviousPaper, error) {
	p := &model.PreviousPaper{}
	err := row.Scan(&p.ID, &p.ExamName, &p.Organization, &p.Year, &p.PaperType, &p.DownloadURL, &p.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *previousPaperRepository) List(ctx context.Context) ([]model.PreviousPaper, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+previousPaperColumns+` FROM previous_papers ORDER BY year DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	papers := make([]model.PreviousPaper, 0)
	for rows.Next() {
		p, err := scanPreviousPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, *p)
	}
	return papers, rows.Err()
}

func (r *previousPaperRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PreviousPaper, error) {
	return scanPreviousPaper(r.db.QueryRow(ctx, `SELECT `+previousPaperColumns+` FROM previous_papers WHERE id = $1`, id))
}

func (r *previousPaperRepository) Create(ctx context.Context, p *model.PreviousPaper) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO previous_papers (id, exam_name, organization, year, paper_type, download_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		p.ID, p.ExamName, p.Organization, p.Year, p.PaperType, p.DownloadURL,
	).Scan(&p.CreatedAt)
	return mapError(err)
}

func (r *previousPaperRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.PreviousPaper, error) {
	query, args, err := previousPaperUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanPreviousPaper(r.db.QueryRow(ctx, query, args...))
}

func (r *previousPaperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM previous_papers WHERE id = $1`, id))
}
