package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
)

// NewsTickerService manages the scrolling announcements banner.
type NewsTickerService struct {
	repo repository.NewsTickerRepository
	log  zerolog.Logger
}

func NewNewsTickerService(repo repository.NewsTickerRepository, log zerolog.Logger) *NewsTickerService {
	return &NewsTickerService{
		repo: repo,
		log:  log.With().Str("component", "news_ticker_service").Logger(),
	}
}

// ListActive returns the items shown to visitors.
func (s *NewsTickerService) ListActive(ctx context.Context) ([]model.NewsTickerItem, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns every item, including inactive ones, for the admin panel.
func (s *NewsTickerService) ListAll(ctx context.Context) ([]model.NewsTickerItem, error) {
	return s.repo.List(ctx, false)
}

func (s *NewsTickerService) Get(ctx context.Context, rawID string) (*model.NewsTickerItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.GetByID(ctx, id)
	return n, translate(err)
}

// Create stores an item; is_active defaults to true and display_order to 0.
func (s *NewsTickerService) Create(ctx context.Context, req model.CreateNewsTickerRequest) (*model.NewsTickerItem, error) {
	n := &model.NewsTickerItem{
		ID:       uuid.New(),
		Content:  strings.TrimSpace(req.Content),
		IsActive: true,
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		n.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, translate(err)
	}
	s.log.Info().Str("news_id", n.ID.String()).Bool("active", n.IsActive).Msg("News ticker item created")
	return n, nil
}

// Update applies the fields present in req; updated_at is always refreshed.
func (s *NewsTickerService) Update(ctx context.Context, rawID string, req model.UpdateNewsTickerRequest) (*model.NewsTickerItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	p := newPatch()
	p.trimmedText("content", req.Content)
	p.boolean("is_active", req.IsActive)
	p.integer("display_order", req.DisplayOrder)

	set, err := p.result(countPresent(req.Content != nil, req.IsActive != nil, req.DisplayOrder != nil))
	if err != nil {
		return nil, err
	}
	n, err := s.repo.Update(ctx, id, set)
	return n, translate(err)
}

func (s *NewsTickerService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return translate(s.repo.Delete(ctx, id))
}
