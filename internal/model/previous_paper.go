package model

import (
	"time"

	"github.com/google/uuid"
)

// PreviousPaper is a past question paper for an exam and year.
type PreviousPaper struct {
	ID           uuid.UUID `json:"id"`
	ExamName     string    `json:"exam_name"`
	Organization string    `json:"organization"`
	Year         int       `json:"year"`
	PaperType    string    `json:"paper_type"`
	DownloadURL  *string   `json:"download_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePreviousPaperRequest struct {
	ExamName     string  `json:"exam_name" binding:"required,notblank,max=255"`
	Organization string  `json:"organization" binding:"required,notblank,max=255"`
	Year         int     `json:"year" binding:"required,min=1900,max=2100"`
	PaperType    string  `json:"paper_type" binding:"required,notblank,max=255"`
	DownloadURL  *string `json:"download_url"`
}

type UpdatePreviousPaperRequest struct {
	ExamName     *string `json:"exam_name" binding:"omitempty,max=255"`
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	Year         *int    `json:"year" binding:"omitempty,min=1900,max=2100"`
	PaperType    *string `json:"paper_type" binding:"omitempty,max=255"`
	DownloadURL  *string `json:"download_url"`
}
