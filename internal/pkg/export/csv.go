package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (e *CSVExporter) Extension() string { return "csv" }

func (e *CSVExporter) Export(w io.Writer, grid Grid) error {
	// UTF-8 BOM so spreadsheet apps detect the encoding of Persian text
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(grid.Headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for _, row := range grid.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
