// Package dataset loads the canonical phantom table into sample.Sample
// records and persists it.
//
// The table is columnar: a header row followed by one row per phantom.
// Recognised columns (case-insensitive):
//
//	sample_label              e.g. EF10_12.5T (family and concentration parsed from it)
//	family                    overrides the family parsed from the label
//	thinner_concentration     overrides the concentration parsed from the label
//	elastic_modulus_mean_kPa  required
//
// Any other column (standard deviations, test dates, operator notes) is
// ignored.
//
// Backends:
//   - CSV and XLSX readers/writers (XLSX through excelize)
//   - SQLStore: one table in SQLite (modernc, pure Go) or Postgres (pgx)
//   - S3Source: a CSV or XLSX object in an S3-compatible bucket
//
// Open picks a backend from config.Dataset the way the blob layer picks a
// driver from the environment.
package dataset
