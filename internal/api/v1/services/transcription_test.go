package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/transcription"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Transcribe(ctx context.Context, a transcription.Audio) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *mockEngine) Name() string { return "fake" }

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(ctx context.Context, requestID, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, requestID, filename, contentType, data)
	return args.String(0), args.Error(1)
}

type memoryRepo struct {
	mu      sync.Mutex
	rows    []model.Transcription
	saveErr error
	listErr error
}

func (r *memoryRepo) Save(_ context.Context, t *model.Transcription) (int64, error) {
	if r.saveErr != nil {
		return 0, r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *t)
	return t.ID, nil
}

func (r *memoryRepo) List(_ context.Context, limit int) ([]model.Transcription, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Transcription, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

func (r *memoryRepo) Close() error { return nil }

type recorder struct {
	engine string
	size   int64
	err    error
	calls  int
}

func (r *recorder) ObserveTranscription(engine string, sizeBytes int64, err error) {
	r.engine, r.size, r.err = engine, sizeBytes, err
	r.calls++
}

var wav = append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 32)...)

func TestTranscribeSuccess(t *testing.T) {
	engine := &mockEngine{}
	archiver := &mockArchiver{}
	repo := &memoryRepo{}
	rec := &recorder{}

	engine.On("Transcribe", mock.Anything, mock.MatchedBy(func(a transcription.Audio) bool {
		return a.Filename == "voz.WAV" && a.Ext == "wav" && bytes.Equal(a.Data, wav)
	})).Return("hola mundo", nil).Once()
	archiver.On("Archive", mock.Anything, "req-1", "voz.WAV", mock.Anything, wav).Return("audio/req-1.WAV", nil).Once()

	svc := NewTranscriptionService(engine, archiver, repo, rec, nil)
	resp, err := svc.Transcribe(context.Background(), Upload{RequestID: "req-1", Filename: "voz.WAV", Data: wav})

	require.NoError(t, err)
	assert.Equal(t, &dto.TranscribeResponse{Filename: "voz.WAV", Text: "hola mundo"}, resp)

	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	assert.Equal(t, "req-1", row.RequestID)
	assert.Equal(t, "fake", row.Engine)
	assert.Equal(t, int64(len(wav)), row.SizeBytes)
	assert.Equal(t, "hola mundo", row.Text)
	assert.Equal(t, "audio/req-1.WAV", row.ArchiveKey)
	assert.Empty(t, row.Error)

	assert.Equal(t, 1, rec.calls)
	assert.NoError(t, rec.err)
	engine.AssertExpectations(t)
	archiver.AssertExpectations(t)
}

func TestTranscribeUnsupportedFormat(t *testing.T) {
	engine := &mockEngine{}
	repo := &memoryRepo{}

	svc := NewTranscriptionService(engine, nil, repo, nil, nil)
	_, err := svc.Transcribe(context.Background(), Upload{Filename: "doc.pdf", Data: []byte("%PDF")})

	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
	assert.Empty(t, repo.rows)
	engine.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestTranscribeEmptyUpload(t *testing.T) {
	svc := NewTranscriptionService(&mockEngine{}, nil, nil, nil, nil)
	_, err := svc.Transcribe(context.Background(), Upload{Filename: "a.mp3"})
	assert.True(t, errors.Is(err, errors.ErrEmptyUpload))
}

func TestTranscribeEngineFailureIsRecorded(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := &mockEngine{}
	repo := &memoryRepo{}
	rec := &recorder{}
	engine.On("Transcribe", mock.Anything, mock.Anything).Return("", fmt.Errorf("model not found")).Once()

	svc := NewTranscriptionService(engine, nil, repo, rec, zap.New(core))
	_, err := svc.Transcribe(context.Background(), Upload{RequestID: "r", Filename: "a.mp3", Data: []byte("ID3data")})

	require.EqualError(t, err, "model not found")
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "model not found", repo.rows[0].Error)
	assert.Error(t, rec.err)

	entries := logs.FilterMessage("transcription failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "r", entries[0].ContextMap()["request_id"])
}

func TestTranscribeArchiveAndHistoryFailuresAreIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := &mockEngine{}
	archiver := &mockArchiver{}
	engine.On("Transcribe", mock.Anything, mock.Anything).Return("texto", nil)
	archiver.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", fmt.Errorf("bucket missing"))

	svc := NewTranscriptionService(engine, archiver, &memoryRepo{saveErr: fmt.Errorf("disk full")}, nil, zap.New(core))
	resp, err := svc.Transcribe(context.Background(), Upload{Filename: "a.m4a", Data: []byte("data")})

	require.NoError(t, err)
	assert.Equal(t, "texto", resp.Text)
	assert.Equal(t, 1, logs.FilterMessage("failed to archive upload").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to save transcription history").Len())
}

func TestEngineName(t *testing.T) {
	assert.Equal(t, "fake", NewTranscriptionService(&mockEngine{}, nil, nil, nil, nil).EngineName())
}
