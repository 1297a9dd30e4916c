package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/model"
)

func seeded() *memoryRepo {
	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	return &memoryRepo{rows: []model.Transcription{
		{ID: 1, RequestID: "a", Filename: "a.mp3", Engine: "fake", SizeBytes: 3, Text: "uno", CreatedAt: created},
		{ID: 2, RequestID: "b", Filename: "b.wav", Engine: "fake", SizeBytes: 4, Error: "boom", CreatedAt: created},
	}}
}

func TestListTranscriptions(t *testing.T) {
	svc := NewHistoryService(seeded())

	rows, err := svc.ListTranscriptions(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b.wav", rows[0].Filename)

	rows, err = svc.ListTranscriptions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHistoryService(seeded()).ExportTranscriptions(context.Background(), dto.ExportRequest{Format: dto.FormatCSV}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, []string{"2", "b", "2024-02-03T04:05:06Z", "b.wav", "fake", "4", "", "boom", ""}, records[1])
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHistoryService(seeded()).ExportTranscriptions(context.Background(), dto.ExportRequest{Format: dto.FormatJSON}, &buf))

	var rows []model.Transcription
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestExportXLSXByDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHistoryService(seeded()).ExportTranscriptions(context.Background(), dto.ExportRequest{}, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 3)
}

func TestExportErrors(t *testing.T) {
	var buf bytes.Buffer
	err := NewHistoryService(seeded()).ExportTranscriptions(context.Background(), dto.ExportRequest{Format: "pdf"}, &buf)
	assert.EqualError(t, err, "unsupported export format: pdf")

	err = NewHistoryService(&memoryRepo{listErr: fmt.Errorf("db down")}).ExportTranscriptions(context.Background(), dto.ExportRequest{}, &buf)
	assert.ErrorContains(t, err, "db down")
}
