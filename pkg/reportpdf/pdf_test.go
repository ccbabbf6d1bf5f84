package reportpdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() TimesheetDoc {
	return TimesheetDoc{
		Company:      "TU CASA RESTAURANT LLC",
		Subtitle:     "Work Schedule Report",
		WeekOf:       "01/07/2024",
		EmployeeName: "Maria Lopez",
		EmployeeCode: "ML-104",
		Columns:      []string{"Date", "Entry", "Exit", "Overtime", "Total Hours"},
		Rows: [][]string{
			{"01/07/2024", "08:00", "17:00", "1.00", "10.00"},
			{"02/07/2024", "N/A", "N/A", "0.00", "0.00"},
		},
		TotalHours: "10.00",
		TotalPay:   "205.00",
	}
}

func TestRenderDocument(t *testing.T) {
	data, err := Render(sampleDoc())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderShortRow(t *testing.T) {
	doc := sampleDoc()
	doc.Rows = append(doc.Rows, []string{"03/07/2024"})

	data, err := Render(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderNoColumns(t *testing.T) {
	_, err := Render(TimesheetDoc{Company: "TU CASA RESTAURANT LLC"})
	assert.Error(t, err)
}
