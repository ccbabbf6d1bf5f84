package reportsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderMatrix(t *testing.T) {
	matrix := [][]string{
		{"Employee", "01/07/2024", "02/07/2024", "Total Hours"},
		{"Maria Lopez", "8.00", "9.50", "17.50"},
		{"Ivan Petrov", "0.00", "8.00", "8.00"},
	}

	data, err := NewExporter(DefaultLayout()).Render("TU CASA RESTAURANT LLC - Weekly Hours Report", matrix)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := DefaultLayout().SheetName
	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "TU CASA RESTAURANT LLC - Weekly Hours Report", title)

	header, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	hours, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "9.50", hours)

	total, err := f.GetCellValue(sheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "8.00", total)
}

func TestRenderEmptyMatrix(t *testing.T) {
	_, err := NewExporter(DefaultLayout()).Render("title", nil)
	assert.Error(t, err)
}

func TestLayoutFromYAML(t *testing.T) {
	layout, err := LayoutFromYAML([]byte("sheet_name: Payroll\nheader_fill: \"2E7D32\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Payroll", layout.SheetName)
	assert.Equal(t, "2E7D32", layout.HeaderFill)
	assert.Equal(t, DefaultLayout().ColWidth, layout.ColWidth)
}

func TestLayoutFromYAMLInvalid(t *testing.T) {
	_, err := LayoutFromYAML([]byte("sheet_name: [broken"))
	assert.Error(t, err)
}

func TestLayoutFromFileMissing(t *testing.T) {
	layout, err := LayoutFromFile("no-such-layout.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), layout)
}
