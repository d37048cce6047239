package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService *service.ExportService
	log           zerolog.Logger
	now           func() time.Time
}

func NewExportHandler(exportService *service.ExportService, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		log:           log.With().Str("component", "export_handler").Logger(),
		now:           time.Now,
	}
}

// ExportJobs godoc
// GET /api/admin/exports/jobs
// Downloads every job as an XLSX workbook.
func (h *ExportHandler) ExportJobs(c *gin.Context) {
	f, _, err := h.exportService.JobsWorkbook(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, h.log, fmt.Errorf("write workbook: %w", err))
		return
	}

	filename := fmt.Sprintf("jobs-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
