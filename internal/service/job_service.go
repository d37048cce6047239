package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

const (
	defaultVacancies     = "Various"
	defaultQualification = "As per notification"
)

// JobService handles job postings.
type JobService struct {
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewJobService creates a new JobService.
func NewJobService(jobs repository.JobRepository, categories repository.CategoryRepository, log zerolog.Logger) *JobService {
	return &JobService{
		jobs:       jobs,
		categories: categories,
		log:        log.With().Str("component", "job_service").Logger(),
		now:        time.Now,
	}
}

// List returns jobs newest first. categoryID takes precedence over
// categorySlug. A malformed categoryID matches nothing; an unknown slug
// is ignored and the full list is returned.
func (s *JobService) List(ctx context.Context, categoryID, categorySlug string) ([]model.Job, error) {
	var filter model.JobFilter

	switch {
	case categoryID != "":
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return []model.Job{}, nil
		}
		filter.CategoryID = &id
	case categorySlug != "":
		c, err := s.categories.GetBySlug(ctx, categorySlug)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if c != nil {
			filter.CategoryID = &c.ID
		}
	}

	return s.jobs.List(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, rawID string) (*model.Job, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, id)
	return j, translate(err)
}

// Create validates the category and fills in defaults for vacancies,
// qualification and last_date.
func (s *JobService) Create(ctx context.Context, req model.CreateJobRequest) (*model.Job, error) {
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	lastDate := model.NewDate(s.now())
	if strings.TrimSpace(req.LastDate) != "" {
		lastDate, err = model.ParseDate(req.LastDate)
		if err != nil {
			return nil, newValidationError("last_date", "last_date must be a date in YYYY-MM-DD format")
		}
	}

	j := &model.Job{
		ID:              uuid.New(),
		CategoryID:      categoryID,
		Organization:    req.Organization,
		PostName:        req.PostName,
		Vacancies:       orDefault(req.Vacancies, defaultVacancies),
		Qualification:   orDefault(req.Qualification, defaultQualification),
		LastDate:        lastDate,
		FullDetailsURL:  nullable(req.FullDetailsURL),
		NotificationURL: nullable(req.NotificationURL),
		ApplyURL:        nullable(req.ApplyURL),
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, translate(err)
	}

	s.log.Info().Str("job_id", j.ID.String()).Str("category_id", categoryID.String()).Msg("Job created")
	return j, nil
}

// Update applies the fields present in req.
func (s *JobService) Update(ctx context.Context, rawID string, req model.UpdateJobRequest) (*model.Job, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		p.set.Set("category_id", categoryID)
	}
	p.text("organization", req.Organization)
	p.text("post_name", req.PostName)
	p.text("vacancies", req.Vacancies)
	p.text("qualification", req.Qualification)
	p.date("last_date", req.LastDate)
	p.url("full_details_url", req.FullDetailsURL)
	p.url("notification_url", req.NotificationURL)
	p.url("apply_url", req.ApplyURL)

	set, err := p.result(countPresent(
		req.CategoryID != nil, req.Organization != nil, req.PostName != nil,
		req.Vacancies != nil, req.Qualification != nil, req.LastDate != nil,
		req.FullDetailsURL != nil, req.NotificationURL != nil, req.ApplyURL != nil,
	))
	if err != nil {
		return nil, err
	}

	j, err := s.jobs.Update(ctx, id, set)
	if err != nil {
		return nil, translate(err)
	}
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.jobs.Delete(ctx, id))
}

// resolveCategory returns ErrInvalidCategory unless raw names an existing category.
func (s *JobService) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrInvalidCategory
	}
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, ErrInvalidCategory
		}
		return uuid.Nil, err
	}
	return id, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
