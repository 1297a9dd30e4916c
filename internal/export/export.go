// Package export writes the transcription history as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/JesusPQ15/Transcription-page/internal/model"
)

// SheetName is the worksheet holding the history
const SheetName = "Transcriptions"

// Header is the first row of the sheet
var Header = []string{"ID", "Request ID", "Created At", "File Name", "Engine", "Size (bytes)", "Transcription", "Error Message", "Archive Key"}

// Workbook builds the workbook for transcriptions
func Workbook(transcriptions []model.Transcription) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range Header {
		headerRow.AddCell().Value = title
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.RequestID
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Filename
		row.AddCell().Value = t.Engine
		row.AddCell().Value = fmt.Sprint(t.SizeBytes)
		row.AddCell().Value = t.Text
		row.AddCell().Value = t.Error
		row.AddCell().Value = t.ArchiveKey
	}

	return file, nil
}

// Write streams the workbook to w
func Write(transcriptions []model.Transcription, w io.Writer) error {
	file, err := Workbook(transcriptions)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
