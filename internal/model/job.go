package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a recruitment notice published under a category.
type Job struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"category_id"`
	Organization    string    `json:"organization"`
	PostName        string    `json:"post_name"`
	Vacancies       string    `json:"vacancies"`
	Qualification   string    `json:"qualification"`
	LastDate        Date      `json:"last_date"`
	FullDetailsURL  *string   `json:"full_details_url"`
	NotificationURL *string   `json:"notification_url"`
	ApplyURL        *string   `json:"apply_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// JobFilter narrows a job listing. A nil CategoryID lists everything.
type JobFilter struct {
	CategoryID *uuid.UUID
}

// CreateJobRequest is the payload for POST /api/jobs.
type CreateJobRequest struct {
	CategoryID      string  `json:"category_id" binding:"required,notblank"`
	Organization    string  `json:"organization" binding:"required,notblank,max=255"`
	PostName        string  `json:"post_name" binding:"required,notblank,max=255"`
	Vacancies       string  `json:"vacancies" binding:"max=100"`
	Qualification   string  `json:"qualification" binding:"max=255"`
	LastDate        string  `json:"last_date" binding:"omitempty,datetime=2006-01-02"`
	FullDetailsURL  *string `json:"full_details_url"`
	NotificationURL *string `json:"notification_url"`
	ApplyURL        *string `json:"apply_url"`
}

// UpdateJobRequest is the payload for PUT /api/jobs/:id. Nil fields are left untouched.
type UpdateJobRequest struct {
	CategoryID      *string `json:"category_id"`
	Organization    *string `json:"organization" binding:"omitempty,max=255"`
	PostName        *string `json:"post_name" binding:"omitempty,max=255"`
	Vacancies       *string `json:"vacancies" binding:"omitempty,max=100"`
	Qualification   *string `json:"qualification" binding:"omitempty,max=255"`
	LastDate        *string `json:"last_date"`
	FullDetailsURL  *string `json:"full_details_url"`
	NotificationURL *string `json:"notification_url"`
	ApplyURL        *string `json:"apply_url"`
}
