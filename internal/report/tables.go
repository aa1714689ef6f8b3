package report

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// maxSpan caps colspan/rowspan values taken from the markup.
const maxSpan = 1000

// Candidate is one table found in the html fragment.
type Candidate struct {
	// Index is the position of the table in document order.
	Index int
	// Markup is the length in characters of the serialized table element.
	Markup int
	Rows   int
	Cols   int
	Grid   [][]string
	// HeaderHits counts expected source labels in the first row.
	HeaderHits int
}

// Cells is the grid area used by the most-cells strategy.
func (c Candidate) Cells() int { return c.Rows * c.Cols }

// findTables parses the fragment and returns every table, nested ones
// included, in document order.
func findTables(fragment string, columns map[string]string) ([]Candidate, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)
	var (
		out     []Candidate
		walkErr error
	)
	doc.Find("table").EachWithBreak(func(i int, tbl *goquery.Selection) bool {
		markup, err := goquery.OuterHtml(tbl)
		if err != nil {
			walkErr = err
			return false
		}
		grid := tableGrid(tbl)
		c := Candidate{
			Index:  i,
			Markup: utf8.RuneCountInString(markup),
			Rows:   len(grid),
			Grid:   grid,
		}
		if len(grid) > 0 {
			c.Cols = len(grid[0])
			c.HeaderHits = headerHits(grid[0], columns)
		}
		out = append(out, c)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

type pendingSpan struct {
	left int
	text string
}

// tableGrid converts the rows owned by tbl into a rectangular grid. Rows of
// nested tables are skipped; colspan and rowspan repeat the cell text.
func tableGrid(tbl *goquery.Selection) [][]string {
	var grid [][]string
	carry := map[int]*pendingSpan{}
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(tbl) {
			return
		}
		var row []string
		col := 0
		fill := func() {
			for {
				p, ok := carry[col]
				if !ok {
					return
				}
				row = append(row, p.text)
				p.left--
				if p.left == 0 {
					delete(carry, col)
				}
				col++
			}
		}
		tr.ChildrenFiltered("td, th").Each(func(_ int, cell *goquery.Selection) {
			fill()
			text := cellText(cell)
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			for k := 0; k < colspan; k++ {
				row = append(row, text)
				if rowspan > 1 {
					carry[col] = &pendingSpan{left: rowspan - 1, text: text}
				}
				col++
			}
		})
		fill()
		if len(row) > 0 {
			grid = append(grid, row)
		}
	})
	width := 0
	for _, r := range grid {
		if len(r) > width {
			width = len(r)
		}
	}
	for i, r := range grid {
		for len(r) < width {
			r = append(r, "")
		}
		grid[i] = r
	}
	return grid
}

func spanAttr(s *goquery.Selection, name string) int {
	v, ok := s.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxSpan {
		return maxSpan
	}
	return n
}

// cellText collapses whitespace runs, NBSP included, to single spaces.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
