package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsTickerItem is one line of the scrolling announcement banner.
type NewsTickerItem struct {
	ID           uuid.UUID `json:"id"`
	Content      string    `json:"content"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateNewsTickerRequest struct {
	Content      string `json:"content" binding:"required,notblank"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order" binding:"omitempty,min=-2147483648,max=2147483647"`
}

type UpdateNewsTickerRequest struct {
	Content      *string `json:"content"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=-2147483648,max=2147483647"`
}
