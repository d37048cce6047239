package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

type MaterialService struct {
	repo repository.MaterialRepository
	log  zerolog.Logger
}

func NewMaterialService(repo repository.MaterialRepository, log zerolog.Logger) *MaterialService {
	return &MaterialService{
		repo: repo,
		log:  log.With().Str("component", "material_service").Logger(),
	}
}

func (s *MaterialService) List(ctx context.Context) ([]model.Material, error) {
	return s.repo.List(ctx)
}

func (s *MaterialService) Get(ctx context.Context, rawID string) (*model.Material, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(ctx, id)
	return m, translate(err)
}

func (s *MaterialService) Create(ctx context.Context, req model.CreateMaterialRequest) (*model.Material, error) {
	m := &model.Material{
		ID:           uuid.New(),
		Organization: req.Organization,
		Subject:      req.Subject,
		DownloadURL:  nullable(req.DownloadURL),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("material_id", m.ID.String()).Msg("Material created")
	return m, nil
}

func (s *MaterialService) Update(ctx context.Context, rawID string, req model.UpdateMaterialRequest) (*model.Material, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.text("organization", req.Organization)
	p.text("subject", req.Subject)
	p.url("download_url", req.DownloadURL)

	set, err := p.result(countPresent(req.Organization != nil, req.Subject != nil, req.DownloadURL != nil))
	if err != nil {
		return nil, err
	}
	m, err := s.repo.Update(ctx, id, set)
	return m, translate(err)
}

func (s *MaterialService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
