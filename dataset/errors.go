package dataset

import "errors"

var (
	// ErrBadTable marks a header or row that cannot be decoded into a sample.
	ErrBadTable = errors.New("dataset: malformed phantom table")

	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("dataset: unsupported table format")

	// ErrBadTableName rejects SQL table names that are not plain identifiers.
	ErrBadTableName = errors.New("dataset: invalid SQL table name")

	// ErrUnknownDriver is returned by Open for an unsupported dataset driver.
	ErrUnknownDriver = errors.New("dataset: unknown dataset driver")
)
