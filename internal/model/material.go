package model

import (
	"time"

	"github.com/google/uuid"
)

// Material is downloadable study material for a subject.
type Material struct {
	ID           uuid.UUID `json:"id"`
	Organization string    `json:"organization"`
	Subject      string    `json:"subject"`
	DownloadURL  *string   `json:"download_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateMaterialRequest struct {
	Organization string  `json:"organization" binding:"required,notblank,max=255"`
	Subject      string  `json:"subject" binding:"required,notblank,max=255"`
	DownloadURL  *string `json:"download_url"`
}

type UpdateMaterialRequest struct {
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	Subject      *string `json:"subject" binding:"omitempty,max=255"`
	DownloadURL  *string `json:"download_url"`
}
