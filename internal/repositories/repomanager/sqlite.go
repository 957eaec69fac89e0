package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/migrations"
	"github.com/dmitrijs2005/listbot/internal/repositories/details"
	"github.com/dmitrijs2005/listbot/internal/repositories/rows"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

// Rows returns a rows.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Rows(db dbx.DBTX) rows.Repository {
	return rows.NewSQLiteRepository(db)
}

// Details returns a details.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Details(db dbx.DBTX) details.Repository {
	return details.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
