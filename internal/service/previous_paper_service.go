package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

type PreviousPaperService struct {
	repo repository.PreviousPaperRepository
	log  zerolog.Logger
}

func NewPreviousPaperService(repo repository.PreviousPaperRepository, log zerolog.Logger) *PreviousPaperService {
	return &PreviousPaperService{
		repo: repo,
		log:  log.With().Str("component", "previous_paper_service").Logger(),
	}
}

func (s *PreviousPaperService) List(ctx context.Context) ([]model.PreviousPaper, error) {
	return s.repo.List(ctx)
}

func (s *PreviousPaperService) Get(ctx context.Context, rawID string) (*model.PreviousPaper, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	return p, translate(err)
}

func (s *PreviousPaperService) Create(ctx context.Context, req model.CreatePreviousPaperRequest) (*model.PreviousPaper, error) {
	p := &model.PreviousPaper{
		ID:           uuid.New(),
		ExamName:     req.ExamName,
		Organization: req.Organization,
		Year:         req.Year,
		PaperType:    req.PaperType,
		DownloadURL:  nullable(req.DownloadURL),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("paper_id", p.ID.String()).Int("year", p.Year).Msg("Previous paper created")
	return p, nil
}

func (s *PreviousPaperService) Update(ctx context.Context, rawID string, req model.UpdatePreviousPaperRequest) (*model.PreviousPaper, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.text("exam_name", req.ExamName)
	p.text("organization", req.Organization)
	p.integer("year", req.Year)
	p.text("paper_type", req.PaperType)
	p.url("download_url", req.DownloadURL)

	set, err := p.result(countPresent(req.ExamName != nil, req.Organization != nil, req.Year != nil,
		req.PaperType != nil, req.DownloadURL != nil))
	if err != nil {
		return nil, err
	}
	paper, err := s.repo.Update(ctx, id, set)
	return paper, translate(err)
}

func (s *PreviousPaperService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
