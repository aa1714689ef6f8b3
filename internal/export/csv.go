package export

import (
	"encoding/csv"
	"io"

	"github.com/hyperifyio/rireport/internal/report"
)

// CSVWriter writes a header line followed by one line per row.
type CSVWriter struct {
	// Comma overrides the field delimiter; zero means ','.
	Comma rune
}

func (c CSVWriter) Write(w io.Writer, rs *report.RecordSet) error {
	cw := csv.NewWriter(w)
	if c.Comma != 0 {
		cw.Comma = c.Comma
	}
	if err := cw.Write(rs.Names()); err != nil {
		return err
	}
	rec := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i, col := range rs.Columns {
			rec[i] = cellString(col, row[i])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
