package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AdmitCardService handles admit card announcements.
type AdmitCardService struct {
	repo repository.AdmitCardRepository
	log  zerolog.Logger
}

func NewAdmitCardService(repo repository.AdmitCardRepository, log zerolog.Logger) *AdmitCardService {
	return &AdmitCardService{
		repo: repo,
		log:  log.With().Str("component", "admit_card_service").Logger(),
	}
}

func (s *AdmitCardService) List(ctx context.Context) ([]model.AdmitCard, error) {
	return s.repo.List(ctx)
}

func (s *AdmitCardService) Get(ctx context.Context, rawID string) (*model.AdmitCard, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.GetByID(ctx, id)
	return a, translate(err)
}

// Create stores an admit card. An absent or unrecognised status becomes PENDING.
func (s *AdmitCardService) Create(ctx context.Context, req model.CreateAdmitCardRequest) (*model.AdmitCard, error) {
	date, err := model.ParseDate(req.ExamDate)
	if err != nil {
		return nil, newValidationError("exam_date", "exam_date must be a date in YYYY-MM-DD format")
	}

	a := &model.AdmitCard{
		ID:           uuid.New(),
		ExamName:     req.ExamName,
		Organization: req.Organization,
		ExamDate:     date,
		Status:       coerceAdmitCardStatus(req.Status),
		DownloadURL:  nullable(req.DownloadURL),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("admit_card_id", a.ID.String()).Str("status", string(a.Status)).Msg("Admit card created")
	return a, nil
}

// Update applies the fields present in req; an unrecognised status is rejected.
func (s *AdmitCardService) Update(ctx context.Context, rawID string, req model.UpdateAdmitCardRequest) (*model.AdmitCard, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.text("exam_name", req.ExamName)
	p.text("organization", req.Organization)
	p.date("exam_date", req.ExamDate)
	p.url("download_url", req.DownloadURL)
	if req.Status != nil {
		st, ok := parseAdmitCardStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		p.set.Set("status", string(st))
	}

	set, err := p.result(countPresent(req.ExamName != nil, req.Organization != nil, req.ExamDate != nil,
		req.Status != nil, req.DownloadURL != nil))
	if err != nil {
		return nil, err
	}
	a, err := s.repo.Update(ctx, id, set)
	return a, translate(err)
}

func (s *AdmitCardService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
