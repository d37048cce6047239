package model

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=200"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required,notblank,max=5000"`
}
