package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/phantomkit/config"
	"github.com/katalvlaran/phantomkit/dataset"
	"github.com/katalvlaran/phantomkit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phantoms_table.csv")
	require.NoError(t, os.WriteFile(path, []byte(canonicalCSV), 0o600))

	got, err := dataset.Open(context.Background(), config.Dataset{Driver: config.DriverFile, Path: path})
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = dataset.Open(context.Background(), config.Dataset{Driver: config.DriverFile, Path: filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	st, path := openTemp(t)
	in := []sample.Sample{
		{Family: sample.EF30, Concentration: 0, Modulus: 97.26},
		{Family: sample.EF30, Concentration: 30, Modulus: 73.18},
	}
	require.NoError(t, st.Save(ctx, in))

	got, err := dataset.Open(ctx, config.Dataset{Driver: config.DriverSQLite, Path: path, Table: "phantoms"})
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := dataset.Open(context.Background(), config.Dataset{Driver: "ftp"})
	assert.ErrorIs(t, err, dataset.ErrUnknownDriver)
}
