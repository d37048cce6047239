package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultStatus is the publication state of an exam result.
type ResultStatus string

const (
	ResultStatusPending  ResultStatus = "PENDING"
	ResultStatusReleased ResultStatus = "RELEASED"
)

// Result announces the outcome of a recruitment exam.
type Result struct {
	ID           uuid.UUID    `json:"id"`
	ExamName     string       `json:"exam_name"`
	Organization string       `json:"organization"`
	ResultDate   Date         `json:"result_date"`
	Status       ResultStatus `json:"status"`
	DownloadURL  *string      `json:"download_url"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CreateResultRequest is the payload for POST /api/results.
type CreateResultRequest struct {
	ExamName     string  `json:"exam_name" binding:"required,notblank,max=255"`
	Organization string  `json:"organization" binding:"required,notblank,max=255"`
	ResultDate   string  `json:"result_date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status"`
	DownloadURL  *string `json:"download_url"`
}

// UpdateResultRequest is the payload for PUT /api/results/:id.
type UpdateResultRequest struct {
	ExamName     *string `json:"exam_name" binding:"omitempty,max=255"`
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	ResultDate   *string `json:"result_date"`
	Status       *string `json:"status"`
	DownloadURL  *string `json:"download_url"`
}
