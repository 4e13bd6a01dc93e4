package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Attendance Report",
		Headers: []string{"Name", "Date", "Work Hours"},
		Rows: [][]any{
			{"Zhang San", "2024-03-14", 8.0},
			{"Li Si", "2024-03-14", 7.5},
		},
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(sampleTable())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, utf8BOM))

	records, err := csv.NewReader(bytes.NewReader(out[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Date", "Work Hours"}, records[0])
	assert.Equal(t, []string{"Li Si", "2024-03-14", "7.5"}, records[2])
}

func TestXLSX(t *testing.T) {
	out, err := XLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Zhang San", rows[1][0])
	assert.Equal(t, "7.5", rows[2][2])
}

func TestPDF(t *testing.T) {
	out, err := PDF(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, defaultSheet, sheetName(""))
	assert.Len(t, []rune(sheetName("an extremely long report title that overflows")), 31)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "8", cellString(8.0))
	assert.Equal(t, "3", cellString(3))
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "-", cellString("-"))
}
