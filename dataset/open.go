package dataset

import (
	"context"
	"fmt"

	"github.com/katalvlaran/phantomkit/config"
	"github.com/katalvlaran/phantomkit/sample"
)

// Open reads samples from the backend selected by ds.Driver:
//
//	file      CSV/XLSX at ds.Path
//	s3        CSV/XLSX object ds.S3.Bucket/ds.S3.Key
//	sqlite    table ds.Table in the database file ds.Path
//	postgres  table ds.Table at ds.DSN
func Open(ctx context.Context, ds config.Dataset) ([]sample.Sample, error) {
	switch ds.Driver {
	case config.DriverFile:
		return ReadFile(ds.Path)
	case config.DriverS3:
		src, err := NewS3Source(ctx, ds.S3)
		if err != nil {
			return nil, err
		}
		return src.Fetch(ctx)
	case config.DriverSQLite:
		return loadSQL(ctx, SQLiteDriver, ds.Path, ds.Table)
	case config.DriverPostgres:
		return loadSQL(ctx, PostgresDriver, ds.PostgresDSN(), ds.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, ds.Driver)
	}
}

func loadSQL(ctx context.Context, driver, dsn, table string) ([]sample.Sample, error) {
	st, err := OpenSQL(ctx, driver, dsn, table)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.Load(ctx)
}
