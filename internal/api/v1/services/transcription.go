package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
	"github.com/JesusPQ15/Transcription-page/internal/storage"
	"github.com/JesusPQ15/Transcription-page/internal/transcription"
)

// TranscriptionServiceImpl transcribes uploads and records them in the history
type TranscriptionServiceImpl struct {
	engine   transcription.Engine
	archiver storage.Archiver
	repo     repository.Repository
	recorder Recorder
	logger   *zap.Logger
}

// NewTranscriptionService creates a new transcription service. archiver and
// recorder may be nil.
func NewTranscriptionService(engine transcription.Engine, archiver storage.Archiver, repo repository.Repository, recorder Recorder, logger *zap.Logger) *TranscriptionServiceImpl {
	if archiver == nil {
		archiver = storage.Nop{}
	}
	if repo == nil {
		repo = repository.Nop{}
	}
	return &TranscriptionServiceImpl{
		engine:   engine,
		archiver: archiver,
		repo:     repo,
		recorder: recorder,
		logger:   logging.OrNop(logger),
	}
}

// EngineName returns the configured engine
func (s *TranscriptionServiceImpl) EngineName() string {
	return s.engine.Name()
}

// Transcribe validates the upload, archives it, runs the engine and saves a
// history row for both outcomes. Archive and history failures are logged only.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, upload Upload) (*dto.TranscribeResponse, error) {
	audio, err := transcription.NewAudio(upload.Filename, upload.Data)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With(
		zap.String("request_id", upload.RequestID),
		zap.String("filename", upload.Filename),
		zap.String("engine", s.engine.Name()),
	)

	archiveKey, err := s.archiver.Archive(ctx, upload.RequestID, audio.Filename, audio.MIMEType, audio.Data)
	if err != nil {
		logger.Warn("failed to archive upload", zap.Error(err))
	}

	start := time.Now()
	text, err := s.engine.Transcribe(ctx, audio)
	if s.recorder != nil {
		s.recorder.ObserveTranscription(s.engine.Name(), int64(len(audio.Data)), err)
	}

	record := &model.Transcription{
		RequestID:  upload.RequestID,
		Filename:   upload.Filename,
		Engine:     s.engine.Name(),
		SizeBytes:  int64(len(audio.Data)),
		Text:       text,
		ArchiveKey: archiveKey,
	}
	if err != nil {
		record.Error = err.Error()
	}
	if _, saveErr := s.repo.Save(ctx, record); saveErr != nil {
		logger.Warn("failed to save transcription history", zap.Error(saveErr))
	}

	if err != nil {
		logger.Error("transcription failed", zap.Error(err))
		return nil, err
	}

	logger.Info("transcription completed",
		zap.Int("size_bytes", len(audio.Data)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &dto.TranscribeResponse{Filename: upload.Filename, Text: text}, nil
}
