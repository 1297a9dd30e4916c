package transcription

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/audio"
	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
)

func init() {
	Register(config.EngineWhisperCpp, func(cfg config.EngineConfig, logger *zap.Logger) (Engine, error) {
		return NewWhisperCpp(cfg.WhisperCpp, cfg.Language, logger), nil
	})
}

// WhisperCpp transcribes with a local whisper.cpp binary
type WhisperCpp struct {
	binaryPath string
	modelPath  string
	language   string
	threads    int
	converter  *audio.Converter
	logger     *zap.Logger
}

// NewWhisperCpp creates a local whisper.cpp engine
func NewWhisperCpp(cfg config.WhisperCppConfig, language string, logger *zap.Logger) *WhisperCpp {
	return &WhisperCpp{
		binaryPath: cfg.BinaryPath,
		modelPath:  cfg.ModelPath,
		language:   language,
		threads:    cfg.Threads,
		converter:  audio.NewConverter(),
		logger:     logging.OrNop(logger),
	}
}

// Name returns the engine name
func (w *WhisperCpp) Name() string {
	return config.EngineWhisperCpp
}

// Transcribe writes the audio to a temporary file with its original
// extension, converts it to 16kHz WAV when ffmpeg is available, and runs the binary.
func (w *WhisperCpp) Transcribe(ctx context.Context, a Audio) (string, error) {
	dir, err := os.MkdirTemp("", "transcriptor-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "input."+a.Ext)
	if err := os.WriteFile(inputPath, a.Data, 0600); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if w.converter.Available() {
		converted, err := w.converter.ConvertTo16kHzWav(ctx, inputPath)
		if err != nil {
			return "", fmt.Errorf("error converting input file: %w", err)
		}
		inputPath = converted
	} else {
		w.logger.Warn("ffmpeg not found, passing audio to whisper.cpp unconverted", zap.String("ext", a.Ext))
	}

	outputBase := filepath.Join(dir, "output")
	args := w.args(inputPath, outputBase)

	command := exec.CommandContext(ctx, w.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	w.logger.Debug("running whisper.cpp",
		zap.String("binary", w.binaryPath),
		zap.String("args", strings.Join(args, " ")),
	)

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	output, err := os.ReadFile(outputBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

func (w *WhisperCpp) args(inputPath, outputBase string) []string {
	args := []string{
		"-m", w.modelPath,
		"-l", w.language,
		"-otxt",
		"-np",
		"-f", inputPath,
		"-of", outputBase,
	}
	if w.threads > 0 {
		args = append(args, "-t", strconv.Itoa(w.threads))
	}
	return args
}
