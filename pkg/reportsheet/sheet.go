// Package reportsheet renders a string matrix into a styled xlsx workbook.
// It knows nothing about employees or hours; callers hand it the finished
// cell values.
package reportsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Exporter renders matrices with a fixed layout.
type Exporter struct {
	layout Layout
}

// NewExporter creates a new Exporter instance
func NewExporter(layout Layout) *Exporter {
	return &Exporter{layout: layout}
}

// Render writes the matrix into a workbook and returns the xlsx bytes. The
// first matrix row is treated as the header row; a title line above it comes
// from the layout.
func (e *Exporter) Render(title string, matrix [][]string) ([]byte, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	if title == "" {
		title = e.layout.Title
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.layout.SheetName
	f.SetSheetName("Sheet1", sheet)

	width := len(matrix[0])
	endCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: e.layout.TitleFontSize},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "A1", endCol+"1"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", endCol+"1", titleStyle); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: e.layout.HeaderFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{e.layout.HeaderFill}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	for r, row := range matrix {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetCellStyle(sheet, "A2", endCol+"2", headerStyle); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheet, "A", "A", e.layout.FirstColWidth); err != nil {
		return nil, err
	}
	if width > 1 {
		secondCol, _ := excelize.ColumnNumberToName(2)
		if err := f.SetColWidth(sheet, secondCol, endCol, e.layout.ColWidth); err != nil {
			return nil, err
		}
	}

	if e.layout.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      2,
			TopLeftCell: "A3",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
