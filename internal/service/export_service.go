package service

import (
	"context"
	"fmt"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const jobsSheet = "Jobs"

var jobExportHeaders = []string{
	"ID",
	"Category",
	"Organization",
	"Post Name",
	"Vacancies",
	"Qualification",
	"Last Date",
	"Full Details URL",
	"Notification URL",
	"Apply URL",
	"Created At",
}

// ExportService builds spreadsheet downloads for the admin panel.
type ExportService struct {
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	log        zerolog.Logger
}

func NewExportService(jobs repository.JobRepository, categories repository.CategoryRepository, log zerolog.Logger) *ExportService {
	return &ExportService{
		jobs:       jobs,
		categories: categories,
		log:        log.With().Str("component", "export_service").Logger(),
	}
}

// JobsWorkbook returns every job, newest first, as an XLSX workbook.
// The caller must Close the returned file.
func (s *ExportService) JobsWorkbook(ctx context.Context) (*excelize.File, int, error) {
	jobs, err := s.jobs.List(ctx, model.JobFilter{})
	if err != nil {
		return nil, 0, err
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID.String()] = c.Name
	}

	f, err := buildJobsWorkbook(jobs, names)
	if err != nil {
		return nil, 0, fmt.Errorf("build jobs workbook: %w", err)
	}
	s.log.Info().Int("rows", len(jobs)).Msg("Jobs exported")
	return f, len(jobs), nil
}

func buildJobsWorkbook(jobs []model.Job, categoryNames map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", jobsSheet); err != nil {
		f.Close()
		return nil, err
	}

	for col, header := range jobExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(jobsSheet, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(jobExportHeaders), 1)
		_ = f.SetCellStyle(jobsSheet, "A1", last, bold)
	}

	for i, j := range jobs {
		row := []any{
			j.ID.String(),
			categoryNames[j.CategoryID.String()],
			j.Organization,
			j.PostName,
			j.Vacancies,
			j.Qualification,
			j.LastDate.String(),
			derefOrEmpty(j.FullDetailsURL),
			derefOrEmpty(j.NotificationURL),
			derefOrEmpty(j.ApplyURL),
			j.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(jobsSheet, start, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
