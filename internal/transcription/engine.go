package transcription

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/errors"
)

// SupportedFormats are the accepted upload extensions
var SupportedFormats = []string{"opus", "mp3", "wav", "m4a"}

// Audio is one uploaded file
type Audio struct {
	Filename string
	Ext      string
	MIMEType string
	Data     []byte
}

// Engine converts audio to text
type Engine interface {
	Transcribe(ctx context.Context, audio Audio) (string, error)
	Name() string
}

// Factory builds an engine from configuration
type Factory func(cfg config.EngineConfig, logger *zap.Logger) (Engine, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a factory available under name
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Registered returns the registered engine names, sorted
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// New builds the engine named by cfg.Name
func New(cfg config.EngineConfig, logger *zap.Logger) (Engine, error) {
	registryMu.RLock()
	factory, ok := registry[cfg.Name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownEngine, "engine %q", cfg.Name)
	}

	engine, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s engine: %w", cfg.Name, err)
	}
	return engine, nil
}

// Extension returns the lowercased text after the last dot of filename.
// A name without a dot yields the whole name.
func Extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return strings.ToLower(filename)
}

// IsSupported reports whether ext is an accepted upload extension
func IsSupported(ext string) bool {
	return lo.Contains(SupportedFormats, ext)
}

// NewAudio validates the file extension and sniffs the content type
func NewAudio(filename string, data []byte) (Audio, error) {
	ext := Extension(filename)
	if !IsSupported(ext) {
		return Audio{}, errors.ErrUnsupportedFormat
	}
	if len(data) == 0 {
		return Audio{}, errors.ErrEmptyUpload
	}

	return Audio{
		Filename: filename,
		Ext:      ext,
		MIMEType: mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}
