// Package reportpdf renders a single employee's weekly time sheet as a PDF
// document. Like reportsheet it only formats: all numbers arrive as strings.
package reportpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// TimesheetDoc is everything the document shows.
type TimesheetDoc struct {
	Company      string
	Subtitle     string
	WeekOf       string
	EmployeeName string
	EmployeeCode string
	Columns      []string
	Rows         [][]string
	TotalHours   string
	TotalPay     string
}

// Render produces the PDF bytes for the document.
func Render(doc TimesheetDoc) ([]byte, error) {
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("document has no columns")
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(14, 12, 14)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(usable, 9, doc.Company, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(usable, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	info := usable / 3
	pdf.CellFormat(info, 6, "Employee: "+doc.EmployeeName, "", 0, "L", false, 0, "")
	pdf.CellFormat(info, 6, "Code: "+doc.EmployeeCode, "", 0, "C", false, 0, "")
	pdf.CellFormat(info, 6, "Week of: "+doc.WeekOf, "", 1, "R", false, 0, "")
	pdf.Ln(3)

	colWidth := usable / float64(len(doc.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for _, name := range doc.Columns {
		pdf.CellFormat(colWidth, 7, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range doc.Rows {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(235, 239, 247)
		}
		for c := 0; c < len(doc.Columns); c++ {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			pdf.CellFormat(colWidth, 6.5, value, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(usable/2, 6, "Total Hours: "+doc.TotalHours, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 6, "Total Pay: "+doc.TotalPay, "", 1, "R", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	lineWidth := usable/2 - 20
	pdf.CellFormat(lineWidth, 6, "_______________________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(lineWidth, 6, "_______________________________", "", 1, "R", false, 0, "")
	pdf.CellFormat(lineWidth, 5, "Employee Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(lineWidth, 5, "Supervisor Signature", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
