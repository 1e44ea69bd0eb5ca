package dataset

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/katalvlaran/phantomkit/sample"
)

// Driver names accepted by OpenSQL.
const (
	SQLiteDriver   = "sqlite"
	PostgresDriver = "pgx"
)

const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func init() {
	sqlx.BindDriver(SQLiteDriver, sqlx.QUESTION)
}

// row mirrors the table columns with plain field types.
type row struct {
	Label         string  `db:"sample_label"`
	Family        string  `db:"family"`
	Concentration float64 `db:"thinner_concentration"`
	Modulus       float64 `db:"elastic_modulus_kpa"`
}

// SQLStore keeps the phantom table in a single SQL table.
type SQLStore struct {
	db    *sqlx.DB
	table string
}

// OpenSQL connects to driver/dsn and verifies the connection. For SQLite
// the DSN is a file path; WAL and a busy timeout are enabled.
func OpenSQL(ctx context.Context, driver, dsn, table string) (*SQLStore, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrBadTableName, table)
	}
	if driver == SQLiteDriver {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &SQLStore{db: db, table: table}, nil
}

// sqliteDSN appends the connection pragmas, keeping any existing query.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}

	return dsn + "?" + sqlitePragmas
}

// Close releases the connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Migrate creates the table when missing.
func (s *SQLStore) Migrate(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		sample_label TEXT NOT NULL DEFAULT '',
		family TEXT NOT NULL,
		thinner_concentration DOUBLE PRECISION NOT NULL,
		elastic_modulus_kpa DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (family, thinner_concentration)
	)`, s.table)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create %s table: %w", s.table, err)
	}

	return nil
}

// Save replaces the table contents with samples in one transaction.
func (s *SQLStore) Save(ctx context.Context, samples []sample.Sample) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.table); err != nil {
		return fmt.Errorf("clear %s: %w", s.table, err)
	}
	insert := fmt.Sprintf(`INSERT INTO %s (sample_label, family, thinner_concentration, elastic_modulus_kpa)
		VALUES (:sample_label, :family, :thinner_concentration, :elastic_modulus_kpa)`, s.table)
	for _, smp := range samples {
		r := row{Label: smp.Label, Family: string(smp.Family), Concentration: smp.Concentration, Modulus: smp.Modulus}
		if _, err := tx.NamedExecContext(ctx, insert, r); err != nil {
			return fmt.Errorf("insert %s: %w", smp, err)
		}
	}

	return tx.Commit()
}

// Load reads every row, ordered by family then concentration.
func (s *SQLStore) Load(ctx context.Context) ([]sample.Sample, error) {
	var rows []row
	q := fmt.Sprintf(`SELECT sample_label, family, thinner_concentration, elastic_modulus_kpa
		FROM %s ORDER BY family, thinner_concentration`, s.table)
	if err := s.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table, err)
	}
	out := make([]sample.Sample, len(rows))
	for i, r := range rows {
		out[i] = sample.Sample{Family: sample.Family(r.Family), Label: r.Label, Concentration: r.Concentration, Modulus: r.Modulus}
	}

	return out, nil
}
