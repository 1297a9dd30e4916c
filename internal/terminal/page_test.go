package terminal

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesusPQ15/Transcription-page/internal/client"
	"github.com/JesusPQ15/Transcription-page/internal/uploader"
)

type stubTranscriber struct {
	filename string
	body     string
	text     string
	err      error
	calls    int
}

func (s *stubTranscriber) Transcribe(_ context.Context, filename string, audio io.Reader) (*client.Response, error) {
	s.calls++
	s.filename = filename
	data, _ := io.ReadAll(audio)
	s.body = string(data)
	if s.err != nil {
		return nil, s.err
	}
	return &client.Response{Filename: filename, Text: s.text}, nil
}

var _ uploader.Page = (*Page)(nil)

func TestPageResolvesElements(t *testing.T) {
	page := NewPage(io.Discard, io.Discard)

	_, ok := page.Trigger(uploader.TriggerID)
	assert.True(t, ok)
	_, ok = page.FileInput(uploader.InputID)
	assert.True(t, ok)
	_, ok = page.Output(uploader.OutputID)
	assert.True(t, ok)

	_, ok = page.Trigger("other")
	assert.False(t, ok)
	_, ok = page.FileInput("other")
	assert.False(t, ok)
	_, ok = page.Output("other")
	assert.False(t, ok)
}

func TestPressWithoutSelectionAlerts(t *testing.T) {
	var out, errOut bytes.Buffer
	page := NewPage(&out, &errOut)
	transcriber := &stubTranscriber{}

	h, err := uploader.Bind(context.Background(), page, transcriber, nil)
	require.NoError(t, err)

	require.True(t, page.Button.Press())
	h.Wait()

	assert.Equal(t, []string{uploader.NoFileMessage}, page.Alerts())
	assert.Contains(t, errOut.String(), uploader.NoFileMessage)
	assert.Zero(t, transcriber.calls)
	assert.Empty(t, page.Result.Text())
	assert.False(t, page.Succeeded())
}

func TestPressUploadsSelectedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nota.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3audio"), 0600))

	var out bytes.Buffer
	page := NewPage(&out, io.Discard)
	page.Input.Select(path)
	transcriber := &stubTranscriber{text: "hola mundo"}

	h, err := uploader.Bind(context.Background(), page, transcriber, nil)
	require.NoError(t, err)

	require.True(t, page.Button.Press())
	h.Wait()

	assert.Equal(t, 1, transcriber.calls)
	assert.Equal(t, "nota.mp3", transcriber.filename)
	assert.Equal(t, "ID3audio", transcriber.body)
	assert.True(t, page.Succeeded())
	assert.Contains(t, out.String(), uploader.ProgressText)
	assert.Contains(t, out.String(), "hola mundo")
	assert.False(t, page.Button.Disabled())
}

func TestPressFailureShowsFailureText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0600))

	var out bytes.Buffer
	page := NewPage(&out, io.Discard)
	page.Input.Select(path)

	h, err := uploader.Bind(context.Background(), page, &stubTranscriber{err: assert.AnError}, nil)
	require.NoError(t, err)

	page.Button.Press()
	h.Wait()

	assert.Equal(t, uploader.FailureText, page.Result.Text())
	assert.False(t, page.Succeeded())
	assert.Contains(t, out.String(), uploader.FailureText)
}

func TestDisabledButtonIgnoresPress(t *testing.T) {
	button := &Button{}
	pressed := 0
	button.OnActivate(func() { pressed++ })

	button.SetDisabled(true)
	assert.False(t, button.Press())
	button.SetDisabled(false)
	assert.True(t, button.Press())
	assert.Equal(t, 1, pressed)
}

func TestFileFieldSelection(t *testing.T) {
	field := &FileField{}
	assert.Empty(t, field.Files())

	field.Select("/tmp/x/voz.opus")
	files := field.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "voz.opus", files[0].Name())

	field.Select("")
	assert.Empty(t, field.Files())
}

func TestAllowedTypes(t *testing.T) {
	assert.Equal(t, []string{".opus", ".mp3", ".wav", ".m4a"}, allowedTypes())
}
