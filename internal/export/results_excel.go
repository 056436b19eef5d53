package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/mind-engage/mindengage-marks/internal/results"
)

const SheetName = "Results"

var header = []string{"ID", "Name", "Subject 1", "Subject 2", "Subject 3", "Subject 4", "Subject 5", "Total", "Percentage"}

// WriteResults writes rows as a single-sheet workbook, newest first as given.
func WriteResults(w io.Writer, rows []results.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range header {
		if err := f.SetCellStr(SheetName, cell(col, 1), h); err != nil {
			return fmt.Errorf("set header %s: %w", h, err)
		}
	}
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	end := cell(len(header)-1, 1)
	_ = f.SetCellStyle(SheetName, "A1", end, bold)
	_ = f.AutoFilter(SheetName, "A1:"+end, nil)

	pct, _ := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	for r, row := range rows {
		line := r + 2
		values := []any{row.ID, row.Name, row.Marks[0], row.Marks[1], row.Marks[2], row.Marks[3], row.Marks[4], row.Total, row.Percentage}
		for c, v := range values {
			if err := f.SetCellValue(SheetName, cell(c, line), v); err != nil {
				return fmt.Errorf("set row %d: %w", line, err)
			}
		}
		pc := cell(len(values)-1, line)
		_ = f.SetCellStyle(SheetName, pc, pc, pct)
	}
	_ = f.SetColWidth(SheetName, "B", "B", 30)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cell returns an A1 reference for a zero-based column and one-based row.
func cell(col, row int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "A" + strconv.Itoa(row)
	}
	return name + strconv.Itoa(row)
}
