package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JesusPQ15/Transcription-page/internal/api/errors"
	"github.com/JesusPQ15/Transcription-page/internal/api/middleware"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /api/v1/export
//
// @Summary Export the transcription history
// @Tags transcriptions
// @Produce octet-stream
// @Param format query string false "Export format" default(xlsx) Enums(csv,json,xlsx)
// @Param limit query int false "Maximum rows" default(10000)
// @Success 200 {file} file "History file"
// @Failure 422 {object} errors.APIError "Invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /api/v1/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := middleware.ValidateQuery(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if req.Format == "" {
		req.Format = dto.FormatXLSX
	}

	// Buffered so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := h.service.ExportTranscriptions(c.Request.Context(), req, &buf); err != nil {
		_ = c.Error(err)
		middleware.HandleError(c, errors.WrapError(err, errors.KindInternal, "failed to export transcriptions"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transcriptions.%s\"", req.Format))
	c.Data(http.StatusOK, dto.ContentType(req.Format), buf.Bytes())
}
