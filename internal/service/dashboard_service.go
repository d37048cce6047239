package service

import (
	"context"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
)

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Counts returns how many records each content section holds.
func (s *DashboardService) Counts(ctx context.Context) (*model.DashboardCounts, error) {
	return s.repo.Counts(ctx)
}
