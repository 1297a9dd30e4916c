package handlers

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JesusPQ15/Transcription-page/internal/api/middleware"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/transcription"
)

// FileField is the multipart field holding the audio
const FileField = "file"

// TranscribeHandler serves POST /transcribe
type TranscribeHandler struct {
	service        services.TranscriptionService
	maxUploadBytes int64
}

// NewTranscribeHandler creates a new transcribe handler. maxUploadBytes <= 0 disables the cap.
func NewTranscribeHandler(service services.TranscriptionService, maxUploadBytes int64) *TranscribeHandler {
	return &TranscribeHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an audio file
// @Description Accepts one audio file (opus, mp3, wav, m4a) in the multipart field "file" and returns its transcription
// @Tags transcribe
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscribeResponse "Transcription text"
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported format"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Transcription failed"
// @Router /transcribe [post]
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	file, header, err := c.Request.FormFile(FileField)
	if err != nil {
		if isTooLarge(err) {
			h.fail(c, http.StatusRequestEntityTooLarge, errors.ErrUploadTooLarge)
			return
		}
		h.fail(c, http.StatusBadRequest, errors.RequiredField(FileField))
		return
	}
	defer file.Close()

	if !transcription.IsSupported(transcription.Extension(header.Filename)) {
		h.fail(c, http.StatusBadRequest, errors.ErrUnsupportedFormat)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.Transcribe(c.Request.Context(), services.Upload{
		RequestID: middleware.GetRequestID(c),
		Filename:  header.Filename,
		Data:      data,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		h.fail(c, status, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TranscribeHandler) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
