package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hyperifyio/rireport/internal/report"
)

// XLSXWriter writes a single worksheet with typed cells.
type XLSXWriter struct {
	Sheet string
}

func (x XLSXWriter) Write(w io.Writer, rs *report.RecordSet) error {
	sheet := x.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	dateFmt := "yyyy-mm-dd"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return err
	}

	names := rs.Names()
	hdr := make([]interface{}, len(names))
	for i, n := range names {
		hdr[i] = n
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	if len(names) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(names), 1)
		if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
			return err
		}
	}

	for r, row := range rs.Rows {
		for c, col := range rs.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			switch col.Type {
			case report.TypeDate:
				if err := f.SetCellValue(sheet, cell, row[c].Date); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
					return err
				}
			case report.TypeNumber:
				if err := f.SetCellFloat(sheet, cell, row[c].Number, -1, 64); err != nil {
					return err
				}
			default:
				if err := f.SetCellStr(sheet, cell, row[c].Text); err != nil {
					return err
				}
			}
		}
	}
	return f.Write(w)
}
