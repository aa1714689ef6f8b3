package report

import (
	"reflect"
	"testing"
	"time"
)

func TestParseNumber(t *testing.T) {
	ok := map[string]float64{
		"1.234,5":     1234.5,
		"12":          12,
		"1.500,0":     1500,
		"2,0":         2,
		"-3,25":       -3.25,
		" 7 ":         7,
		"\u00a012\n":  12,
		"1.234.567,8": 1234567.8,
		"0,5":         0.5,
	}
	for in, want := range ok {
		got, err := ParseNumber(in)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "abc", "1.2", "1,234.5", "12.34", "1,2,3", "1.23,4", ",5", "1 2", "1 .500", "1\u00a0234"} {
		if _, err := ParseNumber(in); err == nil {
			t.Fatalf("ParseNumber(%q) should fail", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("28012024")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}
	for _, in := range []string{"2024-01-28", "2801202", "280120245", "32012024", "28132024", "", "28-01-2024"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
	}
}

func TestSelectTable_TiesPickFirst(t *testing.T) {
	cands := []Candidate{{Index: 0, Markup: 40}, {Index: 1, Markup: 90}, {Index: 2, Markup: 90}}
	got, err := selectTable(cands, StrategyLargestMarkup)
	if err != nil || got != 1 {
		t.Fatalf("expected 1, got %d (%v)", got, err)
	}

	tables, err := findTables(`<html><body><table><tr><td>aaa</td></tr></table><table><tr><td>bbb</td></tr></table></body></html>`, DefaultColumns())
	if err != nil {
		t.Fatalf("findTables: %v", err)
	}
	if len(tables) != 2 || tables[0].Markup != tables[1].Markup {
		t.Fatalf("expected two equal tables, got %+v", tables)
	}
	if got, _ := selectTable(tables, StrategyLargestMarkup); got != 0 {
		t.Fatalf("tie must resolve to first table, got %d", got)
	}
}

func TestSelectTable_Strategies(t *testing.T) {
	cands := []Candidate{
		{Index: 0, Markup: 500, Rows: 2, Cols: 2},
		{Index: 1, Markup: 300, Rows: 5, Cols: 3, HeaderHits: 1},
		{Index: 2, Markup: 200, Rows: 3, Cols: 3, HeaderHits: 3},
	}
	want := map[Strategy]int{StrategyLargestMarkup: 0, StrategyMostCells: 1, StrategyHeaderMatch: 2}
	for s, w := range want {
		if got, err := selectTable(cands, s); err != nil || got != w {
			t.Fatalf("%s: expected %d, got %d (%v)", s, w, got, err)
		}
	}
	if _, err := selectTable(cands, Strategy("biggest")); err == nil {
		t.Fatalf("unknown strategy must fail")
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != StrategyLargestMarkup {
		t.Fatalf("default strategy: %q %v", s, err)
	}
	if s, err := ParseStrategy(" Header-Match "); err != nil || s != StrategyHeaderMatch {
		t.Fatalf("header-match: %q %v", s, err)
	}
	if _, err := ParseStrategy("random"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTableGrid_SpansAndNesting(t *testing.T) {
	doc := `<html><body><table>
<tr><th colspan="2">Periode</th><th>Antal</th></tr>
<tr><td rowspan="2">A</td><td>x&nbsp; y</td><td>1</td></tr>
<tr><td>z</td><td><table><tr><td>inner</td></tr></table></td></tr>
</table></body></html>`
	tables, err := findTables(doc, DefaultColumns())
	if err != nil {
		t.Fatalf("findTables: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected outer and nested table, got %d", len(tables))
	}
	want := [][]string{
		{"Periode", "Periode", "Antal"},
		{"A", "x y", "1"},
		{"A", "z", "inner"},
	}
	if !reflect.DeepEqual(tables[0].Grid, want) {
		t.Fatalf("unexpected grid %q", tables[0].Grid)
	}
	if tables[0].HeaderHits != 1 {
		t.Fatalf("expected one header hit, got %d", tables[0].HeaderHits)
	}
	if !reflect.DeepEqual(tables[1].Grid, [][]string{{"inner"}}) {
		t.Fatalf("unexpected nested grid %q", tables[1].Grid)
	}
}

func TestHeaderNames(t *testing.T) {
	got := headerNames([]string{" Antal ", "", "Tekst", "Tekst", "Tekst"})
	want := []string{"Antal", "Unnamed: 1", "Tekst", "Tekst.1", "Tekst.2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCanonicalize_DecomposedHeader(t *testing.T) {
	names := headerNames([]string{"Beløb", "Caf\u00e9"})
	n, conflict := canonicalize(names, map[string]string{"Cafe\u0301": "cafe"})
	if n != 1 || conflict != "" || names[1] != "cafe" {
		t.Fatalf("unexpected rename %d %q %q", n, conflict, names)
	}
}

func TestCanonicalize_Conflict(t *testing.T) {
	names := []string{"Antal", "Antal i alt"}
	_, conflict := canonicalize(names, map[string]string{"Antal": ColumnAntal, "Antal i alt": ColumnAntal})
	if conflict != ColumnAntal {
		t.Fatalf("expected conflict on antal, got %q", conflict)
	}
}

func TestCanonicalize_CanonicalNameAlreadyPresent(t *testing.T) {
	names := []string{"date", "Slut F-periode", "Antal"}
	n, conflict := canonicalize(names, DefaultColumns())
	if n != 2 || conflict != ColumnDate {
		t.Fatalf("expected conflict on date after 2 renames, got %d %q", n, conflict)
	}

	// Without any rename a literal canonical name is just another column.
	names = []string{"date", "Tekst"}
	if _, conflict := canonicalize(names, DefaultColumns()); conflict != "" {
		t.Fatalf("unexpected conflict %q", conflict)
	}
}
