package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdmitCardRepository interface {
	List(ctx context.Context) ([]model.AdmitCard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AdmitCard, error)
	Create(ctx context.Context, card *model.AdmitCard) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.AdmitCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type admitCardRepository struct {
	db *pgxpool.Pool
}

func NewAdmitCardRepository(db *pgxpool.Pool) AdmitCardRepository {
	return &admitCardRepository{db: db}
}

const admitCardColumns = `id, exam_name, organization, exam_date, status, download_url, created_at`

var admitCardUpdates = newUpdateTable("admit_cards", admitCardColumns, false,
	"exam_name", "organization", "exam_date", "status", "download_url",
)

func scanAdmitCard(row pgx.Row) (*model.AdmitCard, error) {
	a := &model.AdmitCard{}
	err := row.Scan(&a.ID, &a.ExamName, &a.Organization, &a.ExamDate.Time,
		&a.Status, &a.DownloadURL, &a.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *admitCardRepository) List(ctx context.Context) ([]model.AdmitCard, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+admitCardColumns+` FROM admit_cards ORDER BY exam_date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]model.AdmitCard, 0)
	for rows.Next() {
		a, err := scanAdmitCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *a)
	}
	return cards, rows.Err()
}

func (r *admitCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AdmitCard, error) {
	return scanAdmitCard(r.db.QueryRow(ctx, `SELECT `+admitCardColumns+` FROM admit_cards WHERE id = $1`, id))
}

func (r *admitCardRepository) Create(ctx context.Context, card *model.AdmitCard) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admit_cards (id, exam_name, organization, exam_date, status, download_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		card.ID, card.ExamName, card.Organization, card.ExamDate.Time, card.Status, card.DownloadURL,
	).Scan(&card.CreatedAt)
	return mapError(err)
}

func (r *admitCardRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.AdmitCard, error) {
	query, args, err := admitCardUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanAdmitCard(r.db.QueryRow(ctx, query, args...))
}

func (r *admitCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM admit_cards WHERE id = $1`, id))
}
