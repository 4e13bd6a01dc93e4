package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

func sheetName(title string) string {
	// Excel caps sheet names at 31 characters.
	r := []rune(title)
	if len(r) == 0 {
		return defaultSheet
	}
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}

func XLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close xlsx file", "error", err)
		}
	}()

	sheet := sheetName(t.Title)
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if len(t.Headers) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(t.Headers))
		if err != nil {
			return nil, err
		}
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("create header style: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
