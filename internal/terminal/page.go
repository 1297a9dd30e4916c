// Package terminal renders the transcription page in a terminal: the trigger
// is a button pressed programmatically, the file input is a path or an
// interactive picker, and the output is printed with lipgloss.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/huh"

	"github.com/JesusPQ15/Transcription-page/internal/transcription"
	"github.com/JesusPQ15/Transcription-page/internal/uploader"
)

// Button is the terminal stand-in for the transcribe button
type Button struct {
	mu       sync.Mutex
	handlers []func()
	disabled bool
}

// OnActivate registers fn to run on Press
func (b *Button) OnActivate(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

// SetDisabled toggles the button
func (b *Button) SetDisabled(disabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = disabled
}

// Disabled reports whether the button is disabled
func (b *Button) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

// Press activates the button. It reports false when the button is disabled.
func (b *Button) Press() bool {
	b.mu.Lock()
	if b.disabled {
		b.mu.Unlock()
		return false
	}
	handlers := append([]func(){}, b.handlers...)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
	return true
}

// FileField holds the selected path, if any
type FileField struct {
	mu   sync.Mutex
	path string
}

// Select sets the selected path. An empty path clears the selection.
func (f *FileField) Select(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = path
}

// Files returns the selection
func (f *FileField) Files() []uploader.File {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.path == "" {
		return nil
	}
	return []uploader.File{uploader.LocalFile(f.path)}
}

// Result prints each text it receives
type Result struct {
	mu     sync.Mutex
	w      io.Writer
	last   string
	writes int
}

// SetText prints text styled by kind
func (r *Result) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = text
	r.writes++

	var rendered string
	switch text {
	case uploader.ProgressText:
		rendered = progressStyle.Render(text)
	case uploader.FailureText:
		rendered = failureStyle.Render(text)
	default:
		rendered = resultStyle.Render(text)
	}
	fmt.Fprintln(r.w, rendered)
}

// Text returns the last text written
func (r *Result) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Page holds the three elements and prints alerts to its error writer
type Page struct {
	Button *Button
	Input  *FileField
	Result *Result

	errOut  io.Writer
	mu      sync.Mutex
	alerted []string
}

// NewPage creates a page writing results to out and alerts to errOut
func NewPage(out, errOut io.Writer) *Page {
	fmt.Fprintln(out, titleStyle.Render("Transcriptor de Audio"))
	return &Page{
		Button: &Button{},
		Input:  &FileField{},
		Result: &Result{w: out},
		errOut: errOut,
	}
}

// Trigger returns the button for uploader.TriggerID
func (p *Page) Trigger(id string) (uploader.Trigger, bool) {
	if id != uploader.TriggerID {
		return nil, false
	}
	return p.Button, true
}

// FileInput returns the file field for uploader.InputID
func (p *Page) FileInput(id string) (uploader.FileInput, bool) {
	if id != uploader.InputID {
		return nil, false
	}
	return p.Input, true
}

// Output returns the result area for uploader.OutputID
func (p *Page) Output(id string) (uploader.Output, bool) {
	if id != uploader.OutputID {
		return nil, false
	}
	return p.Result, true
}

// Alert prints message to the error writer
func (p *Page) Alert(message string) {
	p.mu.Lock()
	p.alerted = append(p.alerted, message)
	p.mu.Unlock()
	fmt.Fprintln(p.errOut, alertStyle.Render("⚠ "+message))
}

// Alerts returns the alerts shown so far
func (p *Page) Alerts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.alerted...)
}

// Succeeded reports whether the last output is a transcription. An empty
// transcription counts.
func (p *Page) Succeeded() bool {
	p.Result.mu.Lock()
	defer p.Result.mu.Unlock()
	return p.Result.writes >= 2 && p.Result.last != uploader.FailureText
}

// allowedTypes are the picker filters for supported formats
func allowedTypes() []string {
	types := make([]string, 0, len(transcription.SupportedFormats))
	for _, ext := range transcription.SupportedFormats {
		types = append(types, "."+ext)
	}
	return types
}

// Pick runs an interactive file picker rooted at dir and selects the chosen file
func (p *Page) Pick(dir string) error {
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Selecciona un archivo de audio").
				CurrentDirectory(dir).
				AllowedTypes(allowedTypes()).
				Picking(true).
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	p.Input.Select(path)
	return nil
}
