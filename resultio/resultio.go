// Package resultio writes the CSV result file: a `row,column` header
// followed by one 1-based source-cell line per outlet, in outlet order.
package resultio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hydrotools/lfp/fdmatrix"
)

type trackingWriter struct {
	w   *csv.Writer
	err error
}

func (tw *trackingWriter) write(record []string) {
	if tw.err != nil {
		return
	}
	tw.err = tw.w.Write(record)
}

// WriteSources writes the header line "row,column" followed by one
// 1-based (row, col) line per entry in sources, in order.
func WriteSources(w io.Writer, sources []fdmatrix.CellLocation) error {
	tw := &trackingWriter{w: csv.NewWriter(w)}
	tw.write([]string{"row", "column"})
	for _, s := range sources {
		tw.write([]string{fmt.Sprintf("%d", s.Row+1), fmt.Sprintf("%d", s.Col+1)})
	}

	tw.w.Flush()
	if tw.err != nil {
		return fmt.Errorf("resultio: csv write error: %w", tw.err)
	}
	if err := tw.w.Error(); err != nil {
		return fmt.Errorf("resultio: csv flush error: %w", err)
	}
	return nil
}
