// Package export renders tabular reports as CSV, XLSX or PDF documents.
package export

import (
	"fmt"
	"strconv"
)

// Table is a titled grid of cells. Rows hold strings or numbers.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	default:
		return fmt.Sprint(c)
	}
}

func rowStrings(row []any) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = cellString(c)
	}
	return out
}
