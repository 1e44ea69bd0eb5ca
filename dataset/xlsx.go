package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/phantomkit/sample"
)

// SheetName is the sheet written by WriteXLSX and preferred by ReadXLSX.
const SheetName = "phantoms"

// ReadXLSX decodes the phantom table from a workbook. The "phantoms" sheet
// is used when present, else the first sheet.
func ReadXLSX(r io.Reader) ([]sample.Sample, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrBadTable)
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if name == SheetName {
			sheet = name
			break
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %w", ErrBadTable, sheet, err)
	}

	return decodeRows(rows)
}

// WriteXLSX writes samples to a single-sheet workbook with the canonical
// header. Numeric columns are stored as numbers.
func WriteXLSX(w io.Writer, samples []sample.Sample) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	head := header()
	row := make([]interface{}, len(head))
	for i, h := range head {
		row[i] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return err
	}
	for i, s := range samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{s.Label, string(s.Family), s.Concentration, s.Modulus}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.Write(w)
}
