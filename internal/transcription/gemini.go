package transcription

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/JesusPQ15/Transcription-page/internal/config"
)

func init() {
	Register(config.EngineGemini, func(cfg config.EngineConfig, logger *zap.Logger) (Engine, error) {
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		return NewGemini(client, cfg.Gemini.Model, cfg.Language), nil
	})
}

// geminiMIMETypes maps upload extensions to types the Gemini API accepts
var geminiMIMETypes = map[string]string{
	"wav":  "audio/wav",
	"mp3":  "audio/mp3",
	"m4a":  "audio/aac",
	"opus": "audio/ogg",
}

// Gemini transcribes by prompting a Gemini model with inline audio
type Gemini struct {
	client   *genai.Client
	model    string
	language string
}

// NewGemini creates a Gemini engine
func NewGemini(client *genai.Client, model, language string) *Gemini {
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &Gemini{client: client, model: model, language: language}
}

// Name returns the engine name
func (g *Gemini) Name() string {
	return config.EngineGemini
}

// Transcribe sends the audio inline with a transcription prompt
func (g *Gemini) Transcribe(ctx context.Context, a Audio) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(geminiPrompt(g.language)),
		genai.NewPartFromBytes(a.Data, geminiMIMEType(a)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

func geminiPrompt(language string) string {
	prompt := "Transcribe this audio verbatim. Reply with the transcription text only."
	if language != "" {
		prompt += fmt.Sprintf(" The spoken language is %q.", language)
	}
	return prompt
}

func geminiMIMEType(a Audio) string {
	if mimeType, ok := geminiMIMETypes[a.Ext]; ok {
		return mimeType
	}
	return a.MIMEType
}
