package report

import "time"

// ColumnType is the value type of a record set column.
type ColumnType string

const (
	TypeText   ColumnType = "text"
	TypeDate   ColumnType = "date"
	TypeNumber ColumnType = "number"
)

// Column describes one output column. Source is the header text as found in
// the report before canonical renaming.
type Column struct {
	Name   string
	Source string
	Type   ColumnType
}

// Cell holds the original text and, depending on the column type, the parsed
// Date or Number.
type Cell struct {
	Text   string
	Date   time.Time
	Number float64
}

// Row is one data row, aligned with RecordSet.Columns.
type Row []Cell

// RecordSet is the typed table produced by an extraction.
type RecordSet struct {
	Columns []Column
	Rows    []Row
}

// Len returns the number of data rows.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// Index returns the position of the named column or -1.
func (rs *RecordSet) Index(name string) int {
	for i, c := range rs.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names in order.
func (rs *RecordSet) Names() []string {
	out := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		out[i] = c.Name
	}
	return out
}

// Dates returns the date column, or nil if absent.
func (rs *RecordSet) Dates() []time.Time {
	i := rs.Index(ColumnDate)
	if i < 0 {
		return nil
	}
	out := make([]time.Time, len(rs.Rows))
	for r, row := range rs.Rows {
		out[r] = row[i].Date
	}
	return out
}

// Antal returns the antal column, or nil if absent.
func (rs *RecordSet) Antal() []float64 {
	i := rs.Index(ColumnAntal)
	if i < 0 {
		return nil
	}
	out := make([]float64, len(rs.Rows))
	for r, row := range rs.Rows {
		out[r] = row[i].Number
	}
	return out
}
