package dataset

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/phantomkit/sample"
)

// Column names of the canonical table.
const (
	ColLabel         = "sample_label"
	ColFamily        = "family"
	ColConcentration = "thinner_concentration"
	ColModulus       = "elastic_modulus_mean_kPa"
)

// Format is a tabular file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath infers the format from a file or object name.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// header returns the canonical row written by the writers.
func header() []string {
	return []string{ColLabel, ColFamily, ColConcentration, ColModulus}
}

// columns maps header names to indexes; -1 when absent.
type columns struct {
	label, family, conc, modulus int
}

func indexHeader(row []string) (columns, error) {
	c := columns{label: -1, family: -1, conc: -1, modulus: -1}
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case strings.ToLower(ColLabel):
			c.label = i
		case ColFamily:
			c.family = i
		case ColConcentration:
			c.conc = i
		case strings.ToLower(ColModulus):
			c.modulus = i
		}
	}
	if c.modulus < 0 {
		return c, fmt.Errorf("%w: missing %s column", ErrBadTable, ColModulus)
	}
	if c.label < 0 && (c.family < 0 || c.conc < 0) {
		return c, fmt.Errorf("%w: need %s or both %s and %s", ErrBadTable, ColLabel, ColFamily, ColConcentration)
	}

	return c, nil
}

// decodeRows converts a header plus data rows into samples. Blank rows
// are skipped. Line numbers in errors are 1-based and count the header.
func decodeRows(rows [][]string) ([]sample.Sample, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrBadTable)
	}
	cols, err := indexHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var out []sample.Sample
	for i, row := range rows[1:] {
		line := i + 2
		if blank(row) {
			continue
		}
		s, err := decodeRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func decodeRow(cols columns, row []string) (sample.Sample, error) {
	var s sample.Sample
	s.Label = cell(row, cols.label)

	// hasConc tracks whether the label or the column actually supplied one.
	hasConc := false
	if s.Label != "" {
		fam, conc, err := sample.ParseLabel(s.Label)
		switch {
		case err == nil:
			s.Family, s.Concentration = fam, conc
			hasConc = true
		case cols.family < 0 || cols.conc < 0:
			return s, fmt.Errorf("%w: %w", ErrBadTable, err)
		}
	}
	if v := cell(row, cols.family); v != "" {
		s.Family = sample.Family(v)
	}
	if v := cell(row, cols.conc); v != "" {
		c, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("%w: %s %q", ErrBadTable, ColConcentration, v)
		}
		s.Concentration = c
		hasConc = true
	}
	if s.Family == "" {
		return s, fmt.Errorf("%w: row has no family", ErrBadTable)
	}
	if !hasConc {
		return s, fmt.Errorf("%w: row has no %s", ErrBadTable, ColConcentration)
	}

	v := cell(row, cols.modulus)
	m, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return s, fmt.Errorf("%w: %s %q", ErrBadTable, ColModulus, v)
	}
	s.Modulus = m

	return s, nil
}

// encodeRow is the inverse of decodeRow for the canonical header.
func encodeRow(s sample.Sample) []string {
	return []string{
		s.Label,
		string(s.Family),
		strconv.FormatFloat(s.Concentration, 'f', -1, 64),
		strconv.FormatFloat(s.Modulus, 'f', -1, 64),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
