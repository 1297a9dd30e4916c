package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/JesusPQ15/Transcription-page/internal/model"
)

var rows = []model.Transcription{
	{ID: 2, RequestID: "req-2", Filename: "b.wav", Engine: "openai", SizeBytes: 2048, Error: "timeout", CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
	{ID: 1, RequestID: "req-1", Filename: "a.mp3", Engine: "whispercpp", SizeBytes: 1024, Text: "hola mundo", CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
}

func cellValues(r *xlsx.Row) []string {
	values := make([]string, 0, len(r.Cells))
	for _, c := range r.Cells {
		values = append(values, c.Value)
	}
	return values
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(rows, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, SheetName, sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, Header, cellValues(sheet.Rows[0]))
	failed := cellValues(sheet.Rows[1])
	require.GreaterOrEqual(t, len(failed), 8)
	assert.Equal(t, []string{"2", "req-2", "2024-06-01T10:00:00Z", "b.wav", "openai", "2048"}, failed[:6])
	assert.Equal(t, "timeout", failed[7])
	assert.Equal(t, "hola mundo", sheet.Rows[2].Cells[6].Value)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(nil, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
