// Package config collects runtime settings for the phantomkit binaries
// from PHANTOM_* environment variables. Command-line flags in cmd/
// override individual fields after FromEnv.
//
//	PHANTOM_ADDR              listen address (default :8080)
//	PHANTOM_LOG_LEVEL         debug|info|warn|error (default info)
//	PHANTOM_ADMIN_TOKEN       bearer token for POST /v1/reload (empty = disabled)
//	PHANTOM_FAMILIES          comma-separated canonical order (default EF50,EF30,EF10)
//	PHANTOM_DATASET_DRIVER    file|s3|sqlite|postgres (default file)
//	PHANTOM_DATASET_PATH      file path (file driver) or database path (sqlite)
//	PHANTOM_DATASET_DSN       connection string (postgres)
//	PHANTOM_DATASET_TABLE     table name for SQL drivers (default phantoms)
//	PHANTOM_S3_BUCKET         bucket (s3 driver, required)
//	PHANTOM_S3_KEY            object key (s3 driver, required)
//	PHANTOM_S3_REGION         region (default us-east-1)
//	PHANTOM_S3_ENDPOINT       custom endpoint, e.g. MinIO
//	PHANTOM_S3_PATH_STYLE     true|false
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/phantomkit/sample"
)

// Driver names a dataset backend.
type Driver string

// Supported dataset drivers.
const (
	DriverFile     Driver = "file"
	DriverS3       Driver = "s3"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const (
	defaultAddr  = ":8080"
	defaultPath  = "data/processed/phantoms_table.csv"
	defaultTable = "phantoms"
	defaultDSN   = "postgres://localhost/phantomkit?sslmode=disable"
)

// ErrInvalid marks a configuration that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// S3 holds S3-compatible object coordinates.
type S3 struct {
	Bucket          string
	Key             string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Dataset selects where samples are read from.
type Dataset struct {
	Driver Driver
	Path   string
	DSN    string
	Table  string
	S3     S3
}

// Config is the full runtime configuration.
type Config struct {
	Addr       string
	LogLevel   slog.Level
	AdminToken string
	Families   []sample.Family
	Dataset    Dataset
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     defaultAddr,
		LogLevel: slog.LevelInfo,
		Families: sample.DefaultFamilies(),
		Dataset: Dataset{
			Driver: DriverFile,
			Path:   defaultPath,
			Table:  defaultTable,
			S3:     S3{Region: "us-east-1"},
		},
	}
}

// FromEnv overlays PHANTOM_* variables on Default.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.TrimSpace(v)
	}

	if v := get("PHANTOM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := get("PHANTOM_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("%w: PHANTOM_LOG_LEVEL=%q", ErrInvalid, v)
		}
	}
	cfg.AdminToken = get("PHANTOM_ADMIN_TOKEN")
	if v := get("PHANTOM_FAMILIES"); v != "" {
		cfg.Families = ParseFamilies(v)
	}

	ds := &cfg.Dataset
	if v := get("PHANTOM_DATASET_DRIVER"); v != "" {
		ds.Driver = Driver(strings.ToLower(v))
	}
	if v := get("PHANTOM_DATASET_PATH"); v != "" {
		ds.Path = v
	}
	if v := get("PHANTOM_DATASET_DSN"); v != "" {
		ds.DSN = v
	}
	if v := get("PHANTOM_DATASET_TABLE"); v != "" {
		ds.Table = v
	}
	ds.S3.Bucket = get("PHANTOM_S3_BUCKET")
	ds.S3.Key = get("PHANTOM_S3_KEY")
	if v := get("PHANTOM_S3_REGION"); v != "" {
		ds.S3.Region = v
	}
	ds.S3.Endpoint = get("PHANTOM_S3_ENDPOINT")
	if v := get("PHANTOM_S3_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: PHANTOM_S3_PATH_STYLE=%q", ErrInvalid, v)
		}
		ds.S3.PathStyle = b
	}
	ds.S3.AccessKeyID = get("AWS_ACCESS_KEY_ID")
	ds.S3.SecretAccessKey = get("AWS_SECRET_ACCESS_KEY")
	ds.S3.SessionToken = get("AWS_SESSION_TOKEN")

	return cfg, cfg.Validate()
}

// Validate checks driver-specific requirements.
func (c Config) Validate() error {
	if len(c.Families) == 0 {
		return fmt.Errorf("%w: no material families configured", ErrInvalid)
	}
	seen := make(map[sample.Family]bool, len(c.Families))
	for _, f := range c.Families {
		if seen[f] {
			return fmt.Errorf("%w: duplicate family %q", ErrInvalid, f)
		}
		seen[f] = true
	}

	ds := c.Dataset
	switch ds.Driver {
	case DriverFile, DriverSQLite:
		if ds.Path == "" {
			return fmt.Errorf("%w: %s driver needs a path", ErrInvalid, ds.Driver)
		}
	case DriverPostgres:
		// empty DSN falls back to defaultDSN
	case DriverS3:
		if ds.S3.Bucket == "" || ds.S3.Key == "" {
			return fmt.Errorf("%w: s3 driver needs bucket and key", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown dataset driver %q", ErrInvalid, ds.Driver)
	}

	return nil
}

// PostgresDSN returns the configured DSN or the local default.
func (d Dataset) PostgresDSN() string {
	if d.DSN == "" {
		return defaultDSN
	}

	return d.DSN
}

// ParseFamilies splits a comma-separated family list, dropping blanks.
func ParseFamilies(s string) []sample.Family {
	var out []sample.Family
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, sample.Family(p))
		}
	}

	return out
}
