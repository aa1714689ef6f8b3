// Package report turns the payroll portal's "xls" download, which is really an
// MHTML web archive, into a typed record set.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Extractor runs the extraction pipeline. It holds no mutable state and may
// be used from several goroutines.
type Extractor struct {
	Options Options
	Logger  zerolog.Logger
}

// New returns an Extractor with opts; zero fields fall back to DefaultOptions.
func New(opts Options) *Extractor {
	return &Extractor{Options: opts.withDefaults(), Logger: zerolog.Nop()}
}

// Result carries the record set along with pipeline diagnostics.
type Result struct {
	Input      string
	Digest     string
	Encoding   string
	Unwrapped  bool
	Fragment   Fragment
	Candidates []Candidate
	Selected   int
	Strategy   Strategy
	Records    *RecordSet
}

// Extract reads path and converts it into a record set. The file extension is
// never consulted.
func (e *Extractor) Extract(path string) (*RecordSet, error) {
	res, err := e.ExtractReport(path)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// ExtractReport is Extract with diagnostics.
func (e *Extractor) ExtractReport(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindRead, "read", path, "", err)
	}
	return e.run(path, raw)
}

// ExtractBytes runs the pipeline over raw; name only labels errors.
func (e *Extractor) ExtractBytes(name string, raw []byte) (*RecordSet, error) {
	res, err := e.run(name, raw)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

func (e *Extractor) run(name string, raw []byte) (*Result, error) {
	opts := e.Options.withDefaults()
	logger := e.Logger.With().Str("input", name).Logger()
	sum := sha256.Sum256(raw)
	strategy, err := ParseStrategy(string(opts.Selection))
	if err != nil {
		return nil, newError(KindOptions, "options", name, "", err)
	}
	res := &Result{Input: name, Digest: hex.EncodeToString(sum[:]), Strategy: strategy, Selected: -1}

	// Decode
	enc, encName, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, newError(KindDecode, "decode", name, "", err)
	}
	res.Encoding = encName
	if !opts.DisableTransferDecoding {
		if body, ok := unwrapTransfer(raw); ok {
			raw = body
			res.Unwrapped = true
			logger.Debug().Int("bytes", len(body)).Msg("unwrapped transfer-encoded html part")
		}
	}
	text, err := decodeText(raw, enc)
	if err != nil {
		return nil, newError(KindDecode, "decode", name, "encoding "+encName, err)
	}
	if err := checkMojibake(text, opts.Columns); err != nil {
		return nil, newError(KindDecode, "decode", name, "encoding "+encName, err)
	}

	// Isolate markup
	frag, ok := isolateMarkup(text)
	if !ok {
		return nil, newError(KindNoMarkup, "isolate markup", name, "no <html>...</html> region", nil)
	}
	res.Fragment = frag
	logger.Debug().Int("start", frag.Start).Int("end", frag.End).Msg("html fragment located")

	// Parse tables
	candidates, err := findTables(frag.Text, opts.Columns)
	if err != nil {
		return nil, newError(KindNoTable, "parse tables", name, "", err)
	}
	if len(candidates) == 0 {
		return nil, newError(KindNoTable, "parse tables", name, "", nil)
	}
	res.Candidates = candidates

	// Select table
	idx, err := selectTable(candidates, strategy)
	if err != nil {
		return nil, newError(KindNoTable, "select table", name, "", err)
	}
	sel := candidates[idx]
	res.Selected = idx
	logger.Debug().Int("tables", len(candidates)).Int("selected", sel.Index).Int("markup", sel.Markup).
		Str("strategy", string(strategy)).Msg("table selected")

	// Tabularize
	if len(sel.Grid) < 2 {
		return nil, newError(KindEmptyTable, "tabularize", name, fmt.Sprintf("table %d has %d rows including header", sel.Index, len(sel.Grid)), nil)
	}
	sources := headerNames(sel.Grid[0])
	names := append([]string(nil), sources...)
	data := sel.Grid[1:]

	// Canonicalize schema
	renamed, conflict := canonicalize(names, opts.Columns)
	if conflict != "" {
		return nil, newError(KindSchemaMismatch, "canonicalize schema", name, fmt.Sprintf("column %q appears more than once", conflict), nil)
	}
	if renamed == 0 {
		if !opts.Lenient {
			return nil, newError(KindSchemaMismatch, "canonicalize schema", name, fmt.Sprintf("header %q", sources), nil)
		}
		logger.Warn().Strs("header", sources).Msg("no expected columns found; passing table through unrenamed")
	}

	// Retype columns
	rs, err := retype(name, names, sources, data)
	if err != nil {
		return nil, err
	}
	res.Records = rs
	logger.Debug().Int("rows", rs.Len()).Strs("columns", rs.Names()).Msg("report extracted")
	return res, nil
}

func retype(input string, names, sources []string, data [][]string) (*RecordSet, error) {
	rs := &RecordSet{Columns: make([]Column, len(names)), Rows: make([]Row, 0, len(data))}
	for i, n := range names {
		t := TypeText
		switch n {
		case ColumnDate:
			t = TypeDate
		case ColumnAntal:
			t = TypeNumber
		}
		rs.Columns[i] = Column{Name: n, Source: sources[i], Type: t}
	}
	for r, cells := range data {
		row := make(Row, len(names))
		for c, col := range rs.Columns {
			cell := Cell{Text: cells[c]}
			var err error
			switch col.Type {
			case TypeDate:
				cell.Date, err = ParseDate(cell.Text)
			case TypeNumber:
				cell.Number, err = ParseNumber(cell.Text)
			}
			if err != nil {
				return nil, &Error{Kind: KindRetype, Step: "retype columns", Input: input, Row: r, Column: col.Name, Value: cell.Text, Err: err}
			}
			row[c] = cell
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
