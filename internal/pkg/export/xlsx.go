package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) Extension() string { return "xlsx" }

func (e *XLSXExporter) Export(w io.Writer, grid Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 characters, so the sheet keeps a short
	// fixed name and the full title goes into the first row.
	const sheet = "گزارش"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	// Persian report, right-to-left sheet
	rtl := true
	if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return fmt.Errorf("set sheet view: %w", err)
	}

	rowNum := 1
	if grid.Title != "" {
		if err := f.SetCellStr(sheet, "A1", grid.Title); err != nil {
			return fmt.Errorf("write title: %w", err)
		}
		rowNum++
	}

	header := make([]interface{}, len(grid.Headers))
	for i, h := range grid.Headers {
		header[i] = h
	}
	headerCell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, headerCell, &header); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	rowNum++

	for i, row := range grid.Rows {
		cell, err := excelize.CoordinatesToCellName(1, rowNum+i)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
