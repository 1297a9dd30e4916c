package transcription

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/config"
)

func init() {
	Register(config.EngineOpenAI, func(cfg config.EngineConfig, logger *zap.Logger) (Engine, error) {
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientConfig.BaseURL = cfg.OpenAI.BaseURL
		}
		return NewOpenAI(openai.NewClientWithConfig(clientConfig), cfg.OpenAI.Model, cfg.Language), nil
	})
}

// OpenAI transcribes through the OpenAI audio API
type OpenAI struct {
	client   *openai.Client
	model    string
	language string
}

// NewOpenAI creates an OpenAI engine
func NewOpenAI(client *openai.Client, model, language string) *OpenAI {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAI{client: client, model: model, language: language}
}

// Name returns the engine name
func (o *OpenAI) Name() string {
	return config.EngineOpenAI
}

// Transcribe uploads the audio bytes to the OpenAI API
func (o *OpenAI) Transcribe(ctx context.Context, a Audio) (string, error) {
	req := openai.AudioRequest{
		Model:    o.model,
		FilePath: a.Filename,
		Reader:   bytes.NewReader(a.Data),
		Language: o.language,
		Format:   openai.AudioResponseFormatJSON,
	}

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
