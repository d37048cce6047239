package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResultRepository interface {
	List(ctx context.Context) ([]model.Result, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error)
	Create(ctx context.Context, res *model.Result) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Result, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resultRepository struct {
	db *pgxpool.Pool
}

func NewResultRepository(db *pgxpool.Pool) ResultRepository {
	return &resultRepository{db: db}
}

const resultColumns = `id, exam_name, organization, result_date, status, download_url, created_at`

var resultUpdates = newUpdateTable("results", resultColumns, false,
	"exam_name", "organization", "result_date", "status", "download_url",
)

func scanResult(row pgx.Row) (*model.Result, error) {
	res := &model.Result{}
	err := row.Scan(&res.ID, &res.ExamName, &res.Organization, &res.ResultDate.Time,
		&res.Status, &res.DownloadURL, &res.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return res, nil
}

func (r *resultRepository) List(ctx context.Context) ([]model.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+resultColumns+` FROM results ORDER BY result_date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]model.Result, 0)
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

func (r *resultRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error) {
	return scanResult(r.db.QueryRow(ctx, `SELECT `+resultColumns+` FROM results WHERE id = $1`, id))
}

func (r *resultRepository) Create(ctx context.Context, res *model.Result) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO results (id, exam_name, organization, result_date, status, download_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		res.ID, res.ExamName, res.Organization, res.ResultDate.Time, res.Status, res.DownloadURL,
	).Scan(&res.CreatedAt)
	return mapError(err)
}

func (r *resultRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Result, error) {
	query, args, err := resultUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanResult(r.db.QueryRow(ctx, query, args...))
}

func (r *resultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id))
}
