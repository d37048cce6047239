package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository interface {
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, j *model.Job) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, category_id, organization, post_name, vacancies, qualification,
	last_date, full_details_url, notification_url, apply_url, created_at`

var jobUpdates = newUpdateTable("jobs", jobColumns, false,
	"category_id", "organization", "post_name", "vacancies", "qualification",
	"last_date", "full_details_url", "notification_url", "apply_url",
)

func scanJob(row pgx.Row) (*model.Job, error) {
	j := &model.Job{}
	err := row.Scan(
		&j.ID, &j.CategoryID, &j.Organization, &j.PostName, &j.Vacancies, &j.Qualification,
		&j.LastDate.Time, &j.FullDetailsURL, &j.NotificationURL, &j.ApplyURL, &j.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return j, nil
}

func (r *jobRepository) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if filter.CategoryID != nil {
		query += ` WHERE category_id = $1`
		args = append(args, *filter.CategoryID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
}

// Create inserts j. An unknown category_id yields ErrReferenceMissing.
func (r *jobRepository) Create(ctx context.Context, j *model.Job) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO jobs (
			id, category_id, organization, post_name, vacancies, qualification,
			last_date, full_details_url, notification_url, apply_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		j.ID, j.CategoryID, j.Organization, j.PostName, j.Vacancies, j.Qualification,
		j.LastDate.Time, j.FullDetailsURL, j.NotificationURL, j.ApplyURL,
	).Scan(&j.CreatedAt)
	return mapError(err)
}

func (r *jobRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Job, error) {
	query, args, err := jobUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanJob(r.db.QueryRow(ctx, query, args...))
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id))
}
