package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JesusPQ15/Transcription-page/internal/api/errors"
	"github.com/JesusPQ15/Transcription-page/internal/api/middleware"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
)

// TranscriptionHandler serves the transcription history
type TranscriptionHandler struct {
	service services.HistoryService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.HistoryService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// List handles GET /api/v1/transcriptions
//
// @Summary List recent transcriptions
// @Description Returns the newest history rows first
// @Tags transcriptions
// @Produce json
// @Param limit query int false "Maximum rows" default(50) minimum(1) maximum(500)
// @Success 200 {object} dto.TranscriptionListResponse "History rows"
// @Failure 422 {object} errors.APIError "Invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Number of rows returned"
// @Router /api/v1/transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	var query dto.ListTranscriptionsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	items, err := h.service.ListTranscriptions(c.Request.Context(), query.Limit)
	if err != nil {
		_ = c.Error(err)
		middleware.HandleError(c, errors.WrapError(err, errors.KindInternal, "failed to list transcriptions"))
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(items)))
	c.JSON(http.StatusOK, dto.TranscriptionListResponse{Items: items, Count: len(items)})
}
