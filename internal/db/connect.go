package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:results.db?mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/marks?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer at a time; concurrent requests queue on the pool
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := EnsureSchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the results table when it is missing. Safe to call on
// every start.
func EnsureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported driver: %s", driver)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  s1 INTEGER NOT NULL CHECK (s1 BETWEEN 0 AND 100),
  s2 INTEGER NOT NULL CHECK (s2 BETWEEN 0 AND 100),
  s3 INTEGER NOT NULL CHECK (s3 BETWEEN 0 AND 100),
  s4 INTEGER NOT NULL CHECK (s4 BETWEEN 0 AND 100),
  s5 INTEGER NOT NULL CHECK (s5 BETWEEN 0 AND 100),
  total INTEGER NOT NULL CHECK (total BETWEEN 0 AND 500),
  percentage REAL NOT NULL CHECK (percentage BETWEEN 0 AND 100),
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS results (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  s1 INTEGER NOT NULL CHECK (s1 BETWEEN 0 AND 100),
  s2 INTEGER NOT NULL CHECK (s2 BETWEEN 0 AND 100),
  s3 INTEGER NOT NULL CHECK (s3 BETWEEN 0 AND 100),
  s4 INTEGER NOT NULL CHECK (s4 BETWEEN 0 AND 100),
  s5 INTEGER NOT NULL CHECK (s5 BETWEEN 0 AND 100),
  total INTEGER NOT NULL CHECK (total BETWEEN 0 AND 500),
  percentage DOUBLE PRECISION NOT NULL CHECK (percentage BETWEEN 0 AND 100),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
