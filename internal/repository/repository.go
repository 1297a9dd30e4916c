// Package repository persists the transcription history.
package repository

import (
	"context"

	"github.com/JesusPQ15/Transcription-page/internal/model"
)

// DefaultListLimit caps List when the caller passes a non-positive limit
const DefaultListLimit = 50

// Repository stores transcription records
type Repository interface {
	Save(ctx context.Context, t *model.Transcription) (int64, error)
	List(ctx context.Context, limit int) ([]model.Transcription, error)
	Close() error
}

// NormalizeLimit maps non-positive limits to DefaultListLimit
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// Nop discards records. Used when history is disabled.
type Nop struct{}

// Save does nothing and returns id 0
func (Nop) Save(context.Context, *model.Transcription) (int64, error) { return 0, nil }

// List returns an empty slice
func (Nop) List(context.Context, int) ([]model.Transcription, error) {
	return []model.Transcription{}, nil
}

// Close does nothing
func (Nop) Close() error { return nil }
