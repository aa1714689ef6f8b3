package report

import (
	"fmt"
	"strings"
)

// Strategy names a table selection policy.
type Strategy string

const (
	// StrategyLargestMarkup picks the table with the longest serialized html.
	StrategyLargestMarkup Strategy = "largest-markup"
	// StrategyMostCells picks the table with the largest rows x columns grid.
	StrategyMostCells Strategy = "most-cells"
	// StrategyHeaderMatch picks the table whose first row contains the most
	// expected source column labels, falling back to markup size.
	StrategyHeaderMatch Strategy = "header-match"
)

// ParseStrategy maps a configuration string to a Strategy. Empty selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyLargestMarkup:
		return StrategyLargestMarkup, nil
	case StrategyMostCells:
		return StrategyMostCells, nil
	case StrategyHeaderMatch:
		return StrategyHeaderMatch, nil
	}
	return "", fmt.Errorf("unknown table selection strategy %q", s)
}

// Canonical column names consumed downstream.
const (
	ColumnDate   = "date"
	ColumnLonart = "lonart"
	ColumnAntal  = "antal"
)

// DefaultColumns maps the payroll portal's source headers to canonical names.
func DefaultColumns() map[string]string {
	return map[string]string{
		"Slut F-periode": ColumnDate,
		"Lønart":         ColumnLonart,
		"Antal":          ColumnAntal,
	}
}

// DateLayout is the fixed day-month-year layout of the date column.
const DateLayout = "02012006"

// Options configures extraction behavior.
type Options struct {
	// Encoding is a WHATWG or IANA label such as "utf-8" or "windows-1252".
	Encoding string
	// Selection chooses among multiple tables.
	Selection Strategy
	// Columns maps source header text to canonical names.
	Columns map[string]string
	// Lenient passes tables without any expected column through unrenamed
	// instead of failing with SchemaMismatch.
	Lenient bool
	// DisableTransferDecoding leaves quoted-printable or base64 html parts
	// encoded.
	DisableTransferDecoding bool
}

// DefaultOptions returns the options matching the portal's export.
func DefaultOptions() Options {
	return Options{
		Encoding:  "utf-8",
		Selection: StrategyLargestMarkup,
		Columns:   DefaultColumns(),
	}
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Encoding) == "" {
		o.Encoding = "utf-8"
	}
	if o.Selection == "" {
		o.Selection = StrategyLargestMarkup
	}
	if len(o.Columns) == 0 {
		o.Columns = DefaultColumns()
	}
	return o
}
