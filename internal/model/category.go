package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups job postings. Slug is always derived from Name.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryRequest is the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}
