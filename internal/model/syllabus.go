package model

import (
	"time"

	"github.com/google/uuid"
)

// Syllabus links to the published syllabus of an exam.
type Syllabus struct {
	ID           uuid.UUID `json:"id"`
	ExamName     string    `json:"exam_name"`
	Organization string    `json:"organization"`
	DownloadURL  *string   `json:"download_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateSyllabusRequest struct {
	ExamName     string  `json:"exam_name" binding:"required,notblank,max=255"`
	Organization string  `json:"organization" binding:"required,notblank,max=255"`
	DownloadURL  *string `json:"download_url"`
}

type UpdateSyllabusRequest struct {
	ExamName     *string `json:"exam_name" binding:"omitempty,max=255"`
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	DownloadURL  *string `json:"download_url"`
}
