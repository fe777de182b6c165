package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/report"
	"fintrack/internal/services"
)

// ExportHandler serves downloadable reports.
type ExportHandler struct {
	reportService services.ReportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(reportService services.ReportServicer) *ExportHandler {
	return &ExportHandler{reportService: reportService}
}

// ExportCSV downloads every transaction as CSV, oldest first. The document is
// buffered so a failure can still produce an error page.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(c.Request.Context(), &buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.ExportFilename)
	c.Data(http.StatusOK, report.ExportContentType, buf.Bytes())
}
