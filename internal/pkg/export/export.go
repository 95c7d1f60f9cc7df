// Package export turns already-formatted report grids into files. Callers
// hand it display-ready string cells; nothing here formats or localizes
// domain values.
package export

import "io"

// Grid is a rectangular report: a title, column headers, and rows of cells
// that were formatted by the caller.
type Grid struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Exporter writes a Grid in one concrete file format.
type Exporter interface {
	Export(w io.Writer, grid Grid) error

	// ContentType is the MIME type of the produced file.
	ContentType() string

	// Extension is the file extension without the dot.
	Extension() string
}
