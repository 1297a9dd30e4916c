package uploader_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/client"
	"github.com/JesusPQ15/Transcription-page/internal/uploader"
)

// button records its callback and disabled transitions
type button struct {
	mu       sync.Mutex
	callback func()
	states   []bool
}

func (b *button) OnActivate(fn func()) { b.callback = fn }

func (b *button) Click() { b.callback() }

func (b *button) SetDisabled(disabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states = append(b.states, disabled)
}

// fakePage is a Page with optional elements
type fakePage struct {
	recordingNotifier
	trigger *button
	input   uploader.FileInput
	output  *recordingOutput
	lookups []string
}

func (p *fakePage) Trigger(id string) (uploader.Trigger, bool) {
	p.lookups = append(p.lookups, id)
	if p.trigger == nil || id != uploader.TriggerID {
		return nil, false
	}
	return p.trigger, true
}

func (p *fakePage) FileInput(id string) (uploader.FileInput, bool) {
	p.lookups = append(p.lookups, id)
	if p.input == nil || id != uploader.InputID {
		return nil, false
	}
	return p.input, true
}

func (p *fakePage) Output(id string) (uploader.Output, bool) {
	p.lookups = append(p.lookups, id)
	if p.output == nil || id != uploader.OutputID {
		return nil, false
	}
	return p.output, true
}

func TestBindClick(t *testing.T) {
	server := newTranscriptionServer(t, jsonReply(http.StatusOK, `{"text":"hola mundo"}`))

	page := &fakePage{
		trigger: &button{},
		input:   uploader.Selection(audio()),
		output:  &recordingOutput{},
	}

	h, err := uploader.Bind(context.Background(), page, client.New(server.URL), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{uploader.TriggerID, uploader.InputID, uploader.OutputID}, page.lookups)

	page.trigger.Click()
	h.Wait()

	assert.Equal(t, "hola mundo", page.output.Text())
	assert.Equal(t, []bool{true, false}, page.trigger.states)
	assert.Equal(t, []string{uploader.TriggerID, uploader.InputID, uploader.OutputID}, page.lookups)
}

func TestBindClickWithoutSelection(t *testing.T) {
	server := newTranscriptionServer(t, jsonReply(http.StatusOK, `{"text":"unused"}`))

	page := &fakePage{
		trigger: &button{},
		input:   uploader.Selection(nil),
		output:  &recordingOutput{},
	}

	h, err := uploader.Bind(context.Background(), page, client.New(server.URL), nil)
	require.NoError(t, err)

	page.trigger.Click()
	h.Wait()

	assert.Equal(t, []string{uploader.NoFileMessage}, page.alerts)
	assert.Empty(t, page.output.History())
	assert.Empty(t, page.trigger.states)
	assert.Equal(t, int32(0), server.requests.Load())
}

func TestBindClickUpdatesPageBeforeReturning(t *testing.T) {
	release := make(chan struct{})
	server := newTranscriptionServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		jsonReply(http.StatusOK, `{"text":"listo"}`)(w, r)
	})
	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	t.Cleanup(unblock)

	page := &fakePage{
		trigger: &button{},
		input:   uploader.Selection(audio()),
		output:  &recordingOutput{},
	}

	h, err := uploader.Bind(context.Background(), page, client.New(server.URL), nil)
	require.NoError(t, err)

	page.trigger.Click()
	assert.Equal(t, []string{uploader.ProgressText}, page.output.History())
	assert.Equal(t, []bool{true}, page.trigger.states)
	assert.True(t, h.Busy())

	page.trigger.Click()
	assert.Equal(t, []string{uploader.ProgressText}, page.output.History())

	unblock()
	h.Wait()

	assert.Equal(t, []string{uploader.ProgressText, "listo"}, page.output.History())
	assert.Equal(t, []bool{true, false}, page.trigger.states)
	assert.False(t, h.Busy())
	assert.Equal(t, int32(1), server.requests.Load())
}

func TestBindClickWithoutSelectionAlertsBeforeReturning(t *testing.T) {
	page := &fakePage{
		trigger: &button{},
		input:   uploader.Selection(nil),
		output:  &recordingOutput{},
	}

	_, err := uploader.Bind(context.Background(), page, &mockTranscriber{}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		page.trigger.Click()
		assert.Len(t, page.alerts, i+1)
	}
	assert.Empty(t, page.output.History())
}

func TestBindMissingElements(t *testing.T) {
	testCases := []struct {
		name    string
		page    *fakePage
		missing string
	}{
		{"no trigger", &fakePage{input: uploader.Selection{}, output: &recordingOutput{}}, uploader.TriggerID},
		{"no input", &fakePage{trigger: &button{}, output: &recordingOutput{}}, uploader.InputID},
		{"no output", &fakePage{trigger: &button{}, input: uploader.Selection{}}, uploader.OutputID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uploader.Bind(context.Background(), tc.page, &mockTranscriber{}, nil)
			assert.ErrorContains(t, err, tc.missing)
		})
	}
}

func TestLocalFile(t *testing.T) {
	f := uploader.LocalFile("testdata/silence.wav")
	assert.Equal(t, "silence.wav", f.Name())

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
}
