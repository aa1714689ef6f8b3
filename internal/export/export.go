// Package export writes extracted record sets for downstream consumers.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hyperifyio/rireport/internal/report"
)

// Format names an output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ISODate is the layout used for date cells in text formats.
const ISODate = "2006-01-02"

// Writer serializes a record set.
type Writer interface {
	Write(w io.Writer, rs *report.RecordSet) error
}

// ParseFormat maps a name such as "CSV" or ".xlsx" to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case FormatCSV, FormatJSON, FormatXLSX, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// FormatFromPath derives the format from the output file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ForFormat returns the Writer for f.
func ForFormat(f Format) (Writer, error) {
	switch f {
	case FormatCSV:
		return CSVWriter{}, nil
	case FormatJSON:
		return JSONWriter{Indent: "  "}, nil
	case FormatXLSX:
		return XLSXWriter{Sheet: "Report"}, nil
	case FormatPDF:
		return PDFWriter{Title: "Report"}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", f)
}

// WriteFile writes rs to path. An empty format is derived from the extension.
func WriteFile(path string, f Format, rs *report.RecordSet) error {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	w, err := ForFormat(f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	// The file appears at path only once fully written.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := w.Write(tmp, rs); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", f, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// FileSink writes every consumed record set to one file.
type FileSink struct {
	Path   string
	Format Format
}

// Consume writes rs to the sink's path.
func (s FileSink) Consume(ctx context.Context, rs *report.RecordSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteFile(s.Path, s.Format, rs)
}

// cellString renders a cell for text formats.
func cellString(col report.Column, c report.Cell) string {
	switch col.Type {
	case report.TypeDate:
		return c.Date.Format(ISODate)
	case report.TypeNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}
