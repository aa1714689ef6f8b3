package report

import (
	"errors"
	"fmt"
)

// Kind identifies which pipeline step rejected a document.
type Kind string

const (
	KindRead           Kind = "ReadFailure"
	KindDecode         Kind = "DecodeFailure"
	KindNoMarkup       Kind = "NoMarkupFound"
	KindNoTable        Kind = "NoTableFound"
	KindEmptyTable     Kind = "EmptyTable"
	KindSchemaMismatch Kind = "SchemaMismatch"
	KindRetype         Kind = "RetypeFailure"
	KindOptions        Kind = "InvalidOptions"
)

// Sentinels usable with errors.Is. Every *Error unwraps to exactly one of them.
var (
	ErrRead           = errors.New("report file could not be read")
	ErrDecode         = errors.New("report text could not be decoded")
	ErrNoMarkup       = errors.New("no html document found in report")
	ErrNoTable        = errors.New("no table found in html document")
	ErrEmptyTable     = errors.New("selected table has no data rows")
	ErrSchemaMismatch = errors.New("table columns do not match the expected schema")
	ErrRetype         = errors.New("cell could not be converted")
	ErrOptions        = errors.New("invalid extraction options")
)

var sentinels = map[Kind]error{
	KindRead:           ErrRead,
	KindDecode:         ErrDecode,
	KindNoMarkup:       ErrNoMarkup,
	KindNoTable:        ErrNoTable,
	KindEmptyTable:     ErrEmptyTable,
	KindSchemaMismatch: ErrSchemaMismatch,
	KindRetype:         ErrRetype,
	KindOptions:        ErrOptions,
}

// Error is returned by every failing extraction. Row is the 0-based data row
// (header excluded) and is -1 when the failure is not tied to a row.
type Error struct {
	Kind   Kind
	Step   string
	Input  string
	Row    int
	Column string
	Value  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Step)
	if e.Input != "" {
		msg += fmt.Sprintf(" (%s)", e.Input)
	}
	if e.Row >= 0 {
		msg += fmt.Sprintf(": row %d column %q value %q", e.Row, e.Column, e.Value)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s, ok := sentinels[e.Kind]; ok {
		out = append(out, s)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func newError(kind Kind, step, input, detail string, cause error) *Error {
	return &Error{Kind: kind, Step: step, Input: input, Row: -1, Detail: detail, Err: cause}
}

// KindOf returns the Kind carried by err, or "" when err did not come from
// the extractor.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
