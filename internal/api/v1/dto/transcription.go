package dto

import (
	"github.com/JesusPQ15/Transcription-page/internal/model"
)

// TranscribeResponse is the body of a successful POST /transcribe
type TranscribeResponse struct {
	Filename string `json:"filename" example:"nota.opus"`
	Text     string `json:"text" example:"hola mundo"`
}

// ErrorResponse is the body of a failed POST /transcribe
type ErrorResponse struct {
	Error string `json:"error" example:"Formato no soportado"`
}

// ListTranscriptionsQuery holds the history query parameters
type ListTranscriptionsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// TranscriptionListResponse is the body of GET /api/v1/transcriptions
type TranscriptionListResponse struct {
	Items []model.Transcription `json:"items"`
	Count int                   `json:"count"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Engine    string `json:"engine" example:"whispercpp"`
	Timestamp int64  `json:"timestamp"`
}
