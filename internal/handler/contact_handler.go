package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

type ContactHandler struct {
	contactService *service.ContactService
	log            zerolog.Logger
}

func NewContactHandler(contactService *service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		log:            log.With().Str("component", "contact_handler").Logger(),
	}
}

// Submit godoc
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if !bindCreate(c, &req) {
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Message sent successfully"})
}
