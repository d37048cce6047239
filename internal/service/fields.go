package service

import (
	"strings"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

// patch collects the columns present in an update request and any
// per-field problems found while doing so.
type patch struct {
	set    *repository.UpdateSet
	fields map[string]string
}

func newPatch() *patch {
	return &patch{set: repository.NewUpdateSet(), fields: map[string]string{}}
}

func (p *patch) invalid(column, msg string) {
	p.fields[column] = msg
}

// text sets a required text column; present values must not be blank.
func (p *patch) text(column string, v *string) {
	if v == nil {
		return
	}
	if strings.TrimSpace(*v) == "" {
		p.invalid(column, column+" must not be blank")
		return
	}
	p.set.Set(column, *v)
}

// trimmedText is text with surrounding whitespace removed before storing.
func (p *patch) trimmedText(column string, v *string) {
	if v == nil {
		return
	}
	trimmed := strings.TrimSpace(*v)
	p.text(column, &trimmed)
}

// url sets a nullable link column; a blank value clears it.
func (p *patch) url(column string, v *string) {
	if v == nil {
		return
	}
	p.set.Set(column, nullable(v))
}

// date sets a DATE column from a YYYY-MM-DD string.
func (p *patch) date(column string, v *string) {
	if v == nil {
		return
	}
	d, err := model.ParseDate(*v)
	if err != nil {
		p.invalid(column, column+" must be a date in YYYY-MM-DD format")
		return
	}
	p.set.Set(column, d.Time)
}

func (p *patch) integer(column string, v *int) {
	if v != nil {
		p.set.Set(column, *v)
	}
}

func (p *patch) boolean(column string, v *bool) {
	if v != nil {
		p.set.Set(column, *v)
	}
}

// result reports NO_FIELDS_TO_UPDATE when nothing was supplied, otherwise
// any collected field errors.
func (p *patch) result(present int) (*repository.UpdateSet, error) {
	if present == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	if len(p.fields) > 0 {
		return nil, &ValidationError{Fields: p.fields}
	}
	return p.set, nil
}

// countPresent returns how many of the given optional fields were supplied.
func countPresent(ptrs ...bool) int {
	n := 0
	for _, present := range ptrs {
		if present {
			n++
		}
	}
	return n
}

// nullable maps a missing or blank link to NULL.
func nullable(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := *v
	return &s
}
