package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/migrations"
	"github.com/dmitrijs2005/listbot/internal/repositories/details"
	"github.com/dmitrijs2005/listbot/internal/repositories/rows"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Rows returns a rows.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Rows(db dbx.DBTX) rows.Repository {
	return rows.NewPostgresRepository(db)
}

// Details returns a details.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Details(db dbx.DBTX) details.Repository {
	return details.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres())
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
