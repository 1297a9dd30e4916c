// Package uploader binds the transcribe action of the page: validate the file
// selection, upload it, and render the text or a failure message.
package uploader

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/client"
	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
)

// Texts shown to the user
const (
	ProgressText  = "Transcribiendo…"
	FailureText   = "❌ Falló la transcripción."
	NoFileMessage = "Por favor, selecciona un archivo de audio."
)

var (
	// ErrNoFileSelected is returned when the trigger fires with an empty selection
	ErrNoFileSelected = errors.New("no file selected")
	// ErrRequestFailed matches every network, status or decoding failure
	ErrRequestFailed = errors.ErrRequestFailed
	// ErrBusy is returned when a transcription is already in flight
	ErrBusy = errors.New("transcription already in progress")
)

// Transcriber uploads one audio file and returns the server's reply
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (*client.Response, error)
}

// Handler runs the transcribe action against injected elements
type Handler struct {
	elements    Elements
	transcriber Transcriber
	logger      *zap.Logger
	disabler    Disabler

	busy     atomic.Bool
	inflight sync.WaitGroup
}

// NewHandler creates a handler. logger is the diagnostic sink for failures.
func NewHandler(elements Elements, transcriber Transcriber, logger *zap.Logger) (*Handler, error) {
	if err := elements.validate(); err != nil {
		return nil, err
	}
	if transcriber == nil {
		return nil, errors.RequiredField("transcriber")
	}

	return &Handler{
		elements:    elements,
		transcriber: transcriber,
		logger:      logging.OrNop(logger),
	}, nil
}

// Handle performs one activation. It returns ErrNoFileSelected without any
// network call when nothing is selected, ErrBusy when a previous activation
// has not finished, and an error matching ErrRequestFailed when the upload
// fails. Once past the busy check the output is written exactly twice.
func (h *Handler) Handle(ctx context.Context) error {
	file, err := h.begin()
	if err != nil {
		return err
	}
	return h.finish(ctx, file)
}

// Activate runs everything up to the upload on the caller, as a click
// handler would: the alert, the busy check, disabling the trigger and the
// progress text. The upload and the final write run in the background.
// Use Wait to block until every started activation has finished.
func (h *Handler) Activate(ctx context.Context) {
	file, err := h.begin()
	if err != nil {
		h.logger.Debug("activation ended without upload", zap.Error(err))
		return
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		_ = h.finish(ctx, file)
	}()
}

// begin validates the selection and claims the handler. On success the
// trigger is disabled and the progress text is shown.
func (h *Handler) begin() (File, error) {
	files := h.elements.Input.Files()
	if len(files) == 0 {
		h.elements.Notifier.Alert(NoFileMessage)
		return nil, ErrNoFileSelected
	}

	if !h.busy.CompareAndSwap(false, true) {
		h.logger.Debug("transcription already in progress, ignoring activation")
		return nil, ErrBusy
	}

	h.setDisabled(true)
	h.elements.Output.SetText(ProgressText)
	return files[0], nil
}

// finish uploads file and writes the outcome, then releases the handler
func (h *Handler) finish(ctx context.Context, file File) error {
	defer h.busy.Store(false)
	defer h.setDisabled(false)

	text, err := h.submit(ctx, file)
	if err != nil {
		h.elements.Output.SetText(FailureText)
		h.logger.Error("transcription failed",
			zap.String("file", file.Name()),
			zap.Error(err),
		)
		return errors.Mark(err, ErrRequestFailed)
	}

	h.elements.Output.SetText(text)
	return nil
}

// Wait blocks until all background activations have returned
func (h *Handler) Wait() {
	h.inflight.Wait()
}

// Busy reports whether a transcription is in flight
func (h *Handler) Busy() bool {
	return h.busy.Load()
}

func (h *Handler) submit(ctx context.Context, file File) (string, error) {
	audio, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open selected file")
	}
	defer audio.Close()

	resp, err := h.transcriber.Transcribe(ctx, file.Name(), audio)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (h *Handler) setDisabled(disabled bool) {
	if h.disabler != nil {
		h.disabler.SetDisabled(disabled)
	}
}
