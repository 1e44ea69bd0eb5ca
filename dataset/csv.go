package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/phantomkit/sample"
)

// ReadCSV decodes a phantom table from CSV. A UTF-8 BOM is tolerated.
func ReadCSV(r io.Reader) ([]sample.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}

	return decodeRows(rows)
}

// WriteCSV encodes samples with the canonical header.
func WriteCSV(w io.Writer, samples []sample.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header()); err != nil {
		return err
	}
	for _, s := range samples {
		if err := cw.Write(encodeRow(s)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadFile reads a CSV or XLSX file, chosen by extension.
func ReadFile(path string) ([]sample.Sample, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(format, f)
}

// Decode reads a table of the given format.
func Decode(format Format, r io.Reader) ([]sample.Sample, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
