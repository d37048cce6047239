package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyllabusRepository interface {
	List(ctx context.Context) ([]model.Syllabus, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Syllabus, error)
	Create(ctx context.Context, s *model.Syllabus) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Syllabus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type syllabusRepository struct {
	db *pgxpool.Pool
}

func NewSyllabusRepository(db *pgxpool.Pool) SyllabusRepository {
	return &syllabusRepository{db: db}
}

const syllabusColumns = `id, exam_name, organization, download_url, created_at`

var syllabusUpdates = newUpdateTable("syllabus", syllabusColumns, false,
	"exam_name", "organization", "download_url",
)

func scanSyllabus(row pgx.Row) (*model.Syllabus, error) {
	s := &model.Syllabus{}
	if err := row.Scan(&s.ID, &s.ExamName, &s.Organization, &s.DownloadURL, &s.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *syllabusRepository) List(ctx context.Context) ([]model.Syllabus, error) {
	rows, err := r.db.Query(ctx, `SELECT `+syllabusColumns+` FROM syllabus ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Syllabus, 0)
	for rows.Next() {
		s, err := scanSyllabus(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r *syllabusRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Syllabus, error) {
	return scanSyllabus(r.db.QueryRow(ctx, `SELECT `+syllabusColumns+` FROM syllabus WHERE id = $1`, id))
}

func (r *syllabusRepository) Create(ctx context.Context, s *model.Syllabus) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO syllabus (id, exam_name, organization, download_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		s.ID, s.ExamName, s.Organization, s.DownloadURL,
	).Scan(&s.CreatedAt)
	return mapError(err)
}

func (r *syllabusRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Syllabus, error) {
	query, args, err := syllabusUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanSyllabus(r.db.QueryRow(ctx, query, args...))
}

func (r *syllabusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM syllabus WHERE id = $1`, id))
}
