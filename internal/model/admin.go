package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the single credential set allowed to manage content.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// AdminIdentity is the public view of an admin embedded in auth responses.
type AdminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AdminLoginResponse is returned after successful admin login.
type AdminLoginResponse struct {
	Token string        `json:"token"`
	Admin AdminIdentity `json:"admin"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	Valid bool          `json:"valid"`
	Admin AdminIdentity `json:"admin"`
}
