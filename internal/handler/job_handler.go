package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

// JobHandler handles job notice endpoints.
type JobHandler struct {
	jobService *service.JobService
	log        zerolog.Logger
}

func NewJobHandler(jobService *service.JobService, log zerolog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		log:        log.With().Str("component", "job_handler").Logger(),
	}
}

// List godoc
// GET /api/jobs?category_id=&category_slug=
// category_id takes precedence; an unknown slug returns every job.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List(c.Request.Context(), c.Query("category_id"), c.Query("category_slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

// Get godoc
// GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Create godoc
// POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req model.CreateJobRequest
	if !bindCreate(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, job)
}

// Update godoc
// PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var req model.UpdateJobRequest
	if !bindUpdate(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Delete godoc
// DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	deleted(c, "Job")
}
