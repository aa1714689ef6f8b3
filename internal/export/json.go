package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/hyperifyio/rireport/internal/report"
)

// JSONWriter writes an array of objects whose keys keep the column order.
type JSONWriter struct {
	Indent string
}

func (j JSONWriter) Write(w io.Writer, rs *report.RecordSet) error {
	var b bytes.Buffer
	b.WriteString("[")
	for r, row := range rs.Rows {
		if r > 0 {
			b.WriteString(",")
		}
		if j.Indent != "" {
			b.WriteString("\n" + j.Indent)
		}
		b.WriteString("{")
		for i, col := range rs.Columns {
			if i > 0 {
				b.WriteString(",")
			}
			key, err := json.Marshal(col.Name)
			if err != nil {
				return err
			}
			var val []byte
			if col.Type == report.TypeNumber {
				val, err = json.Marshal(row[i].Number)
			} else {
				val, err = json.Marshal(cellString(col, row[i]))
			}
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteString(":")
			b.Write(val)
		}
		b.WriteString("}")
	}
	if j.Indent != "" && len(rs.Rows) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	_, err := w.Write(b.Bytes())
	return err
}
