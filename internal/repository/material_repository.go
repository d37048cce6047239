package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaterialRepository interface {
	List(ctx context.Context) ([]model.Material, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	Create(ctx context.Context, m *model.Material) error
	Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialRepository struct {
	db *pgxpool.Pool
}

func NewMaterialRepository(db *pgxpool.Pool) MaterialRepository {
	return &materialRepository{db: db}
}

const materialColumns = `id, organization, subject, download_url, created_at`

var materialUpdates = newUpdateTable("materials", materialColumns, false,
	"organization", "subject", "download_url",
)

func scanMaterial(row pgx.Row) (*model.Material, error) {
	m := &model.Material{}
	if err := row.Scan(&m.ID, &m.Organization, &m.Subject, &m.DownloadURL, &m.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *materialRepository) List(ctx context.Context) ([]model.Material, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := make([]model.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

func (r *materialRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	return scanMaterial(r.db.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
}

func (r *materialRepository) Create(ctx context.Context, m *model.Material) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO materials (id, organization, subject, download_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		m.ID, m.Organization, m.Subject, m.DownloadURL,
	).Scan(&m.CreatedAt)
	return mapError(err)
}

func (r *materialRepository) Update(ctx context.Context, id uuid.UUID, set *UpdateSet) (*model.Material, error) {
	query, args, err := materialUpdates.statement(set, id)
	if err != nil {
		return nil, err
	}
	return scanMaterial(r.db.QueryRow(ctx, query, args...))
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affectedOne(r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id))
}
