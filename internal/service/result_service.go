package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ResultService handles exam result announcements.
type ResultService struct {
	repo repository.ResultRepository
	log  zerolog.Logger
}

func NewResultService(repo repository.ResultRepository, log zerolog.Logger) *ResultService {
	return &ResultService{
		repo: repo,
		log:  log.With().Str("component", "result_service").Logger(),
	}
}

func (s *ResultService) List(ctx context.Context) ([]model.Result, error) {
	return s.repo.List(ctx)
}

func (s *ResultService) Get(ctx context.Context, rawID string) (*model.Result, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, id)
	return r, translate(err)
}

// Create stores a result. An absent or unrecognised status becomes PENDING.
func (s *ResultService) Create(ctx context.Context, req model.CreateResultRequest) (*model.Result, error) {
	date, err := model.ParseDate(req.ResultDate)
	if err != nil {
		return nil, newValidationError("result_date", "result_date must be a date in YYYY-MM-DD format")
	}

	r := &model.Result{
		ID:           uuid.New(),
		ExamName:     req.ExamName,
		Organization: req.Organization,
		ResultDate:   date,
		Status:       coerceResultStatus(req.Status),
		DownloadURL:  nullable(req.DownloadURL),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("result_id", r.ID.String()).Str("status", string(r.Status)).Msg("Result created")
	return r, nil
}

// Update applies the fields present in req. Unlike Create, an unrecognised
// status is rejected with ErrInvalidStatus.
func (s *ResultService) Update(ctx context.Context, rawID string, req model.UpdateResultRequest) (*model.Result, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.text("exam_name", req.ExamName)
	p.text("organization", req.Organization)
	p.date("result_date", req.ResultDate)
	p.url("download_url", req.DownloadURL)

	if req.Status != nil {
		st, ok := parseResultStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		p.set.Set("status", string(st))
	}

	set, err := p.result(countPresent(req.ExamName != nil, req.Organization != nil, req.ResultDate != nil,
		req.Status != nil, req.DownloadURL != nil))
	if err != nil {
		return nil, err
	}
	r, err := s.repo.Update(ctx, id, set)
	return r, translate(err)
}

func (s *ResultService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
