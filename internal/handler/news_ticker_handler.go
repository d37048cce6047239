package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

// NewsTickerHandler handles the announcement banner endpoints.
type NewsTickerHandler struct {
	newsService *service.NewsTickerService
	log         zerolog.Logger
}

func NewNewsTickerHandler(newsService *service.NewsTickerService, log zerolog.Logger) *NewsTickerHandler {
	return &NewsTickerHandler{
		newsService: newsService,
		log:         log.With().Str("component", "news_ticker_handler").Logger(),
	}
}

// ListActive godoc
// GET /api/news-ticker
func (h *NewsTickerHandler) ListActive(c *gin.Context) {
	items, err := h.newsService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAll godoc
// GET /api/news-ticker/admin
// Includes inactive items.
func (h *NewsTickerHandler) ListAll(c *gin.Context) {
	items, err := h.newsService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /api/news-ticker/:id
func (h *NewsTickerHandler) Get(c *gin.Context) {
	item, err := h.newsService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create godoc
// POST /api/news-ticker
func (h *NewsTickerHandler) Create(c *gin.Context) {
	var req model.CreateNewsTickerRequest
	if !bindCreate(c, &req) {
		return
	}

	item, err := h.newsService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// PUT /api/news-ticker/:id
func (h *NewsTickerHandler) Update(c *gin.Context) {
	var req model.UpdateNewsTickerRequest
	if !bindUpdate(c, &req) {
		return
	}

	item, err := h.newsService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Delete godoc
// DELETE /api/news-ticker/:id
func (h *NewsTickerHandler) Delete(c *gin.Context) {
	if err := h.newsService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	deleted(c, "News item")
}
