package uploader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Element IDs of the transcription page
const (
	TriggerID = "btnTranscribe"
	InputID   = "audioFile"
	OutputID  = "result"
)

// File is a selected file, handled opaquely
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileInput is a file-selection control
type FileInput interface {
	Files() []File
}

// Output is the display element whose text content the handler overwrites
type Output interface {
	SetText(text string)
}

// Notifier shows a blocking notification to the user
type Notifier interface {
	Alert(message string)
}

// Trigger is a user-activated control
type Trigger interface {
	OnActivate(fn func())
}

// Disabler is implemented by triggers that can be disabled while busy
type Disabler interface {
	SetDisabled(disabled bool)
}

// Page resolves named elements. Lookups happen once, in Bind.
type Page interface {
	Trigger(id string) (Trigger, bool)
	FileInput(id string) (FileInput, bool)
	Output(id string) (Output, bool)
	Notifier
}

// Elements are the resolved references the handler works with
type Elements struct {
	Input    FileInput
	Output   Output
	Notifier Notifier
}

func (e Elements) validate() error {
	if e.Input == nil {
		return fmt.Errorf("file input %q is required", InputID)
	}
	if e.Output == nil {
		return fmt.Errorf("output %q is required", OutputID)
	}
	if e.Notifier == nil {
		return fmt.Errorf("notifier is required")
	}
	return nil
}

// LocalFile is a File backed by a path on disk
type LocalFile string

// Name returns the base name of the file
func (f LocalFile) Name() string {
	return filepath.Base(string(f))
}

// Open opens the file for reading
func (f LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Selection is a FileInput holding a fixed list of files
type Selection []File

// Files returns the selection
func (s Selection) Files() []File {
	return s
}
