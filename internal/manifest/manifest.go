// Package manifest records how a report was extracted so a run can be
// audited and reproduced.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyperifyio/rireport/internal/report"
)

// Table is a compact record of one table candidate.
type Table struct {
	Index  int `json:"index"`
	Markup int `json:"markup_chars"`
	Rows   int `json:"rows"`
	Cols   int `json:"cols"`
	Hits   int `json:"header_hits"`
}

// Manifest describes one extraction run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Input       string    `json:"input"`
	Output      string    `json:"output,omitempty"`
	SHA256      string    `json:"sha256"`
	Encoding    string    `json:"encoding"`
	Unwrapped   bool      `json:"transfer_decoded"`
	HTMLStart   int       `json:"html_start"`
	HTMLEnd     int       `json:"html_end"`
	Strategy    string    `json:"strategy"`
	Tables      []Table   `json:"tables"`
	Selected    int       `json:"selected_table"`
	Columns     []string  `json:"columns"`
	Sources     []string  `json:"source_columns"`
	Rows        int       `json:"rows"`
	Version     string    `json:"version,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Build assembles a manifest from an extraction result.
func Build(res *report.Result, output, version string, now time.Time) Manifest {
	m := Manifest{
		RunID:       uuid.NewString(),
		Input:       res.Input,
		Output:      strings.TrimSpace(output),
		SHA256:      res.Digest,
		Encoding:    res.Encoding,
		Unwrapped:   res.Unwrapped,
		HTMLStart:   res.Fragment.Start,
		HTMLEnd:     res.Fragment.End,
		Strategy:    string(res.Strategy),
		Tables:      make([]Table, 0, len(res.Candidates)),
		Selected:    res.Selected,
		Version:     version,
		GeneratedAt: now.UTC(),
	}
	for _, c := range res.Candidates {
		m.Tables = append(m.Tables, Table{Index: c.Index, Markup: c.Markup, Rows: c.Rows, Cols: c.Cols, Hits: c.HeaderHits})
	}
	if res.Records != nil {
		m.Rows = res.Records.Len()
		for _, col := range res.Records.Columns {
			m.Columns = append(m.Columns, col.Name)
			m.Sources = append(m.Sources, col.Source)
		}
	}
	return m
}

// PathFor returns the manifest path next to an output file.
func PathFor(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".manifest.json"
}

// Write stores m as indented JSON.
func Write(path string, m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a manifest written by Write.
func Read(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
