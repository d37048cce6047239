package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

// Errors returned by services. Handlers map each to an HTTP status and code.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrMailFailed         = errors.New("failed to send message")
)

// ValidationError carries per-field messages for input the binding layer
// could not check, such as blank values in partial updates.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// translate maps repository sentinels onto service errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrConflict
	case errors.Is(err, repository.ErrReferenceMissing):
		return ErrInvalidCategory
	case errors.Is(err, repository.ErrEmptyUpdate):
		return ErrNoFieldsToUpdate
	}
	return err
}

// parseID treats a malformed identifier as a row that does not exist.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", ErrNotFound, raw)
	}
	return id, nil
}
