package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
	log             zerolog.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		log:             log.With().Str("component", "category_handler").Logger(),
	}
}

// List godoc
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// GetBySlug godoc
// GET /api/categories/slug/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// Create godoc
// POST /api/categories
// The slug is derived from the name; duplicates are rejected with CONFLICT.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if !bindCreate(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, category)
}

// Delete godoc
// DELETE /api/categories/:id
// Jobs in the category are removed with it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	deleted(c, "Category")
}
