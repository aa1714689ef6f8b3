package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/rireport/internal/report"
)

// PDFWriter renders the record set as a simple landscape table.
type PDFWriter struct {
	Title string
}

func (p PDFWriter) Write(w io.Writer, rs *report.RecordSet) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate so Danish letters survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	if p.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr(p.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := pageW - left - right
	if n := len(rs.Columns); n > 0 {
		colW /= float64(n)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range rs.Columns {
		pdf.CellFormat(colW, 7, tr(col.Name), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rs.Rows {
		for i, col := range rs.Columns {
			align := "L"
			if col.Type == report.TypeNumber {
				align = "R"
			}
			pdf.CellFormat(colW, 6, tr(cellString(col, row[i])), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}
