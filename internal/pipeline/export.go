package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExportReportToXLSX writes the audit rows of an import or dedupe run to a
// spreadsheet for review.
func ExportReportToXLSX(rows []ReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"file", "title", "modality", "action"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.File)
		set(2, row.Title)
		set(3, row.Modality)
		set(4, row.Action)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
