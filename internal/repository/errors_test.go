package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "categories_slug_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "jobs_category_id_fkey"}
	other := errors.New("connection reset")

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("insert: %w", unique)), ErrConflict)
	assert.ErrorIs(t, mapError(fk), ErrReferenceMissing)
	assert.Contains(t, mapError(fk).Error(), "jobs_category_id_fkey")
	assert.Same(t, other, mapError(other))
}

func TestAffectedOne(t *testing.T) {
	assert.ErrorIs(t, affectedOne(pgconn.NewCommandTag("DELETE 0"), nil), ErrNotFound)
	assert.NoError(t, affectedOne(pgconn.NewCommandTag("DELETE 1"), nil))
}
