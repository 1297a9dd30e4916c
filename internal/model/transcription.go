package model

import "time"

// Transcription is one recorded upload and its outcome
type Transcription struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Filename   string    `json:"filename"`
	Engine     string    `json:"engine"`
	SizeBytes  int64     `json:"size_bytes"`
	Text       string    `json:"text"`
	Error      string    `json:"error,omitempty"`
	ArchiveKey string    `json:"archive_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Failed reports whether the transcription ended in an error
func (t Transcription) Failed() bool {
	return t.Error != ""
}
