package config

import (
	"log/slog"
	"testing"

	"github.com/katalvlaran/phantomkit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := fromLookup(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, sample.DefaultFamilies(), cfg.Families)
	assert.Equal(t, DriverFile, cfg.Dataset.Driver)
	assert.Equal(t, "phantoms", cfg.Dataset.Table)
	assert.Equal(t, defaultDSN, cfg.Dataset.PostgresDSN())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := fromLookup(env(map[string]string{
		"PHANTOM_ADDR":           ":9090",
		"PHANTOM_LOG_LEVEL":      "debug",
		"PHANTOM_ADMIN_TOKEN":    "s3cret",
		"PHANTOM_FAMILIES":       "EF10, EF30 ,,EF50",
		"PHANTOM_DATASET_DRIVER": "S3",
		"PHANTOM_S3_BUCKET":      "lab",
		"PHANTOM_S3_KEY":         "phantoms.xlsx",
		"PHANTOM_S3_ENDPOINT":    "http://localhost:9000",
		"PHANTOM_S3_PATH_STYLE":  "true",
		"AWS_ACCESS_KEY_ID":      "id",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.Equal(t, []sample.Family{sample.EF10, sample.EF30, sample.EF50}, cfg.Families)
	assert.Equal(t, DriverS3, cfg.Dataset.Driver)
	assert.Equal(t, "lab", cfg.Dataset.S3.Bucket)
	assert.True(t, cfg.Dataset.S3.PathStyle)
	assert.Equal(t, "us-east-1", cfg.Dataset.S3.Region)
	assert.Equal(t, "id", cfg.Dataset.S3.AccessKeyID)
}

func TestFromLookup_Invalid(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"log level":    {"PHANTOM_LOG_LEVEL": "loud"},
		"path style":   {"PHANTOM_S3_PATH_STYLE": "maybe"},
		"driver":       {"PHANTOM_DATASET_DRIVER": "ftp"},
		"s3 no bucket": {"PHANTOM_DATASET_DRIVER": "s3", "PHANTOM_S3_KEY": "k"},
		"dup families": {"PHANTOM_FAMILIES": "EF10,EF10"},
		"blank family": {"PHANTOM_FAMILIES": " , "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fromLookup(env(vars))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidate_SQLite(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Driver = DriverSQLite
	cfg.Dataset.Path = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Dataset.Path = "phantoms.db"
	assert.NoError(t, cfg.Validate())
}
