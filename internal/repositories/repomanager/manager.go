// Package repomanager vends dialect-specific repository implementations and
// runs the embedded goose migrations for the chosen database.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/repositories/details"
	"github.com/dmitrijs2005/listbot/internal/repositories/rows"
	"github.com/pressly/goose/v3"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Rows(db dbx.DBTX) rows.Repository
	Details(db dbx.DBTX) details.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// New returns the manager for the given driver name.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open opens the database for driver and applies the pool settings the
// dialect needs. SQLite is restricted to a single shared connection.
func Open(driver, dsn string) (*sql.DB, error) {
	if _, err := New(driver); err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
