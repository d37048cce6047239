package model

import (
	"time"

	"github.com/google/uuid"
)

// AdmitCardStatus tells candidates whether the hall ticket can be downloaded yet.
type AdmitCardStatus string

const (
	AdmitCardStatusPending   AdmitCardStatus = "PENDING"
	AdmitCardStatusAvailable AdmitCardStatus = "AVAILABLE"
)

type AdmitCard struct {
	ID           uuid.UUID       `json:"id"`
	ExamName     string          `json:"exam_name"`
	Organization string          `json:"organization"`
	ExamDate     Date            `json:"exam_date"`
	Status       AdmitCardStatus `json:"status"`
	DownloadURL  *string         `json:"download_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CreateAdmitCardRequest struct {
	ExamName     string  `json:"exam_name" binding:"required,notblank,max=255"`
	Organization string  `json:"organization" binding:"required,notblank,max=255"`
	ExamDate     string  `json:"exam_date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status"`
	DownloadURL  *string `json:"download_url"`
}

type UpdateAdmitCardRequest struct {
	ExamName     *string `json:"exam_name" binding:"omitempty,max=255"`
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	ExamDate     *string `json:"exam_date"`
	Status       *string `json:"status"`
	DownloadURL  *string `json:"download_url"`
}
