package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/rs/zerolog"
)

// contentService is the CRUD surface shared by results, admit cards,
// syllabus, previous papers and materials.
type contentService[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, rawID string) (*T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, rawID string, req U) (*T, error)
	Delete(ctx context.Context, rawID string) error
}

// ContentHandler serves the list/get/create/update/delete routes of one
// content section. T is the row type, C and U the create and update payloads.
type ContentHandler[T, C, U any] struct {
	svc  contentService[T, C, U]
	noun string
	log  zerolog.Logger
}

// NewContentHandler creates a ContentHandler; noun is used in delete messages.
func NewContentHandler[T, C, U any](svc contentService[T, C, U], noun string, log zerolog.Logger) *ContentHandler[T, C, U] {
	return &ContentHandler[T, C, U]{
		svc:  svc,
		noun: noun,
		log:  log.With().Str("component", "content_handler").Str("section", noun).Logger(),
	}
}

func (h *ContentHandler[T, C, U]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *ContentHandler[T, C, U]) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !bindCreate(c, &req) {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, item)
}

func (h *ContentHandler[T, C, U]) Update(c *gin.Context) {
	var req U
	if !bindUpdate(c, &req) {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	deleted(c, h.noun)
}
