package manifest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hyperifyio/rireport/internal/report"
)

func TestBuildAndWrite(t *testing.T) {
	raw := []byte("<html><body><table><tr><td>x</td></tr></table>" +
		"<table><tr><th>Slut F-periode</th><th>Lønart</th><th>Antal</th></tr>" +
		"<tr><td>01012024</td><td>100</td><td>1.500,0</td></tr></table></body></html>")
	rs, err := report.New(report.DefaultOptions()).ExtractBytes("in.xls", raw)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	res := &report.Result{
		Input:    "in.xls",
		Digest:   "abc",
		Encoding: "utf-8",
		Strategy: report.StrategyLargestMarkup,
		Selected: 1,
		Candidates: []report.Candidate{
			{Index: 0, Markup: 40, Rows: 1, Cols: 1},
			{Index: 1, Markup: 200, Rows: 2, Cols: 3, HeaderHits: 3},
		},
		Records: rs,
	}
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	m := Build(res, "out/in.csv", "1.2.3", now)
	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Fatalf("run id is not a uuid: %q", m.RunID)
	}
	if m.Rows != 1 || len(m.Tables) != 2 || m.Selected != 1 {
		t.Fatalf("unexpected manifest %+v", m)
	}
	if m.Columns[1] != "lonart" || m.Sources[1] != "Lønart" {
		t.Fatalf("unexpected columns %v %v", m.Columns, m.Sources)
	}
	if m.GeneratedAt.Location() != time.UTC || m.GeneratedAt.Hour() != 11 {
		t.Fatalf("generated_at must be UTC, got %v", m.GeneratedAt)
	}

	path := filepath.Join(t.TempDir(), "in.manifest.json")
	if err := Write(path, m); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.RunID != m.RunID || got.Rows != 1 || got.Tables[1].Hits != 3 {
		t.Fatalf("unexpected manifest read back %+v", got)
	}
}

func TestPathFor(t *testing.T) {
	if got := PathFor(filepath.Join("out", "report.xlsx")); got != filepath.Join("out", "report.manifest.json") {
		t.Fatalf("unexpected path %q", got)
	}
}
