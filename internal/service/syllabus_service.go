package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

type SyllabusService struct {
	repo repository.SyllabusRepository
	log  zerolog.Logger
}

func NewSyllabusService(repo repository.SyllabusRepository, log zerolog.Logger) *SyllabusService {
	return &SyllabusService{
		repo: repo,
		log:  log.With().Str("component", "syllabus_service").Logger(),
	}
}

func (s *SyllabusService) List(ctx context.Context) ([]model.Syllabus, error) {
	return s.repo.List(ctx)
}

func (s *SyllabusService) Get(ctx context.Context, rawID string) (*model.Syllabus, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(ctx, id)
	return item, translate(err)
}

func (s *SyllabusService) Create(ctx context.Context, req model.CreateSyllabusRequest) (*model.Syllabus, error) {
	item := &model.Syllabus{
		ID:           uuid.New(),
		ExamName:     req.ExamName,
		Organization: req.Organization,
		DownloadURL:  nullable(req.DownloadURL),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("syllabus_id", item.ID.String()).Msg("Syllabus created")
	return item, nil
}

func (s *SyllabusService) Update(ctx context.Context, rawID string, req model.UpdateSyllabusRequest) (*model.Syllabus, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.text("exam_name", req.ExamName)
	p.text("organization", req.Organization)
	p.url("download_url", req.DownloadURL)

	set, err := p.result(countPresent(req.ExamName != nil, req.Organization != nil, req.DownloadURL != nil))
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, id, set)
	return item, translate(err)
}

func (s *SyllabusService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
