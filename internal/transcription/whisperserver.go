package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/config"
)

func init() {
	Register(config.EngineWhisperServer, func(cfg config.EngineConfig, logger *zap.Logger) (Engine, error) {
		if cfg.WhisperServer.BaseURL == "" {
			return nil, fmt.Errorf("base_url is required")
		}
		return NewWhisperServer(cfg.WhisperServer, cfg.Language), nil
	})
}

// WhisperServer transcribes via HTTP to a whisper.cpp server instance
type WhisperServer struct {
	baseURL       string
	inferencePath string
	language      string
	client        *http.Client
}

// whisperServerResponse is the json response of the /inference endpoint
type whisperServerResponse struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewWhisperServer creates a remote whisper-server engine
func NewWhisperServer(cfg config.WhisperServerConfig, language string) *WhisperServer {
	if cfg.InferencePath == "" {
		cfg.InferencePath = config.DefaultInferencePath
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultWhisperServerTimeout
	}

	return &WhisperServer{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		inferencePath: cfg.InferencePath,
		language:      language,
		client:        &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the engine name
func (ws *WhisperServer) Name() string {
	return config.EngineWhisperServer
}

// Transcribe posts the audio to the server's inference endpoint
func (ws *WhisperServer) Transcribe(ctx context.Context, a Audio) (string, error) {
	body, contentType, err := ws.createMultipartForm(a)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ws.baseURL+ws.inferencePath, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := ws.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(responseData))
	}

	var parsed whisperServerResponse
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("whisper server error: %s", parsed.Error)
	}

	return strings.TrimSpace(parsed.Text), nil
}

func (ws *WhisperServer) createMultipartForm(a Audio) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", a.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(a.Data); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	params := map[string]string{
		"response_format": "json",
		"temperature":     "0.00",
	}
	if ws.language != "" {
		params["language"] = ws.language
	}

	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
