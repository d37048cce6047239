package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyUpdate is returned when an update carries no columns.
	ErrEmptyUpdate = errors.New("no columns to update")
	// ErrColumnNotAllowed is returned for a column outside the table whitelist.
	ErrColumnNotAllowed = errors.New("column not allowed")
)

// UpdateSet is an ordered column → value mapping for a partial update.
// Setting a column twice keeps its first position and the latest value.
type UpdateSet struct {
	columns []string
	values  []any
}

// NewUpdateSet returns an empty UpdateSet.
func NewUpdateSet() *UpdateSet {
	return &UpdateSet{}
}

// Set records a new value for column.
func (u *UpdateSet) Set(column string, value any) *UpdateSet {
	for i, c := range u.columns {
		if c == column {
			u.values[i] = value
			return u
		}
	}
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
	return u
}

// Len returns the number of columns set.
func (u *UpdateSet) Len() int {
	if u == nil {
		return 0
	}
	return len(u.columns)
}

// Each calls fn for every column in insertion order.
func (u *UpdateSet) Each(fn func(column string, value any) error) error {
	for i, c := range u.columns {
		if err := fn(c, u.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// updateTable describes how a repository renders its UPDATE statement.
type updateTable struct {
	name      string
	allowed   map[string]struct{}
	touch     bool // also set updated_at = NOW()
	returning string
}

func newUpdateTable(name, returning string, touch bool, columns ...string) updateTable {
	allowed := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		allowed[c] = struct{}{}
	}
	return updateTable{name: name, allowed: allowed, touch: touch, returning: returning}
}

// statement renders
//
//	UPDATE <table> SET c1 = $1, ..., cn = $n[, updated_at = NOW()] WHERE id = $n+1 RETURNING ...
//
// Column names only ever come from the whitelist; values are always bound.
func (t updateTable) statement(set *UpdateSet, id any) (string, []any, error) {
	if set.Len() == 0 {
		return "", nil, ErrEmptyUpdate
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(t.name)
	sb.WriteString(" SET ")

	args := make([]any, 0, set.Len()+1)
	for i, c := range set.columns {
		if _, ok := t.allowed[c]; !ok {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrColumnNotAllowed, t.name, c)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, set.values[i])
		sb.WriteString(c)
		sb.WriteString(" = $")
		sb.WriteString(strconv.Itoa(len(args)))
	}
	if t.touch {
		sb.WriteString(", updated_at = NOW()")
	}

	args = append(args, id)
	sb.WriteString(" WHERE id = $")
	sb.WriteString(strconv.Itoa(len(args)))
	sb.WriteString(" RETURNING ")
	sb.WriteString(t.returning)

	return sb.String(), args, nil
}
