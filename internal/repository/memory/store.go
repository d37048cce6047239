// Package memory provides in-process implementations of the repository
// interfaces. They back service and handler tests and mirror the ordering,
// uniqueness and cascade rules enforced by the PostgreSQL schema.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

type store[T any] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]T
	last time.Time
}

func newStore[T any]() *store[T] {
	return &store[T]{rows: make(map[uuid.UUID]T)}
}

// stamp returns a strictly increasing timestamp so created_at ordering is
// deterministic within a test. Callers hold mu.
func (s *store[T]) stamp() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *store[T]) list(keep func(T) bool, less func(a, b T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.rows))
	for _, row := range s.rows {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (s *store[T]) get(id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (s *store[T]) find(match func(T) bool) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.rows {
		if match(row) {
			return &row, true
		}
	}
	return nil, false
}

// insert stores row under id after init has filled in server-side columns.
func (s *store[T]) insert(id uuid.UUID, row *T, init func(row *T, now time.Time)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; ok {
		return fmt.Errorf("%w: primary key", repository.ErrConflict)
	}
	init(row, s.stamp())
	s.rows[id] = *row
	return nil
}

// update applies every column of set through apply on a copy of the row and
// stores it only if all columns were accepted.
func (s *store[T]) update(id uuid.UUID, set *repository.UpdateSet, apply func(row *T, column string, value any) error, touch func(row *T, now time.Time)) (*T, error) {
	if set.Len() == 0 {
		return nil, repository.ErrEmptyUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	err := set.Each(func(column string, value any) error {
		return apply(&row, column, value)
	})
	if err != nil {
		return nil, err
	}
	if touch != nil {
		touch(&row, s.stamp())
	}
	s.rows[id] = row
	return &row, nil
}

func (s *store[T]) delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *store[T]) deleteWhere(match func(T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range s.rows {
		if match(row) {
			delete(s.rows, id)
		}
	}
}

func (s *store[T]) count(keep func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, row := range s.rows {
		if keep == nil || keep(row) {
			n++
		}
	}
	return n
}

func notAllowed(table, column string) error {
	return fmt.Errorf("%w: %s.%s", repository.ErrColumnNotAllowed, table, column)
}

// Value helpers mirror what the services place in an UpdateSet.

func asString(table, column string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s.%s: unexpected %T", table, column, v)
	}
	return s, nil
}

func asNullString(table, column string, v any) (*string, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case *string:
		return s, nil
	case string:
		return &s, nil
	}
	return nil, fmt.Errorf("%s.%s: unexpected %T", table, column, v)
}

func asTime(table, column string, v any) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%s.%s: unexpected %T", table, column, v)
	}
	return t, nil
}

func asInt(table, column string, v any) (int, error) {
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%s.%s: unexpected %T", table, column, v)
	}
	return n, nil
}

func asBool(table, column string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s.%s: unexpected %T", table, column, v)
	}
	return b, nil
}

// newerFirst orders by created_at descending.
func newerFirst(a, b time.Time) bool {
	return a.After(b)
}
