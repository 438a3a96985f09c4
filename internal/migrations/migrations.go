package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"jotter/m/internal/database"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// Run applies every pending migration for the driver db was opened with and
// returns the number applied.
func Run(ctx context.Context, db *sqlx.DB) (int, error) {
	dialect, dir := goose.DialectSQLite3, "sqlite"
	if db.DriverName() == database.DriverPostgres {
		dialect, dir = goose.DialectPostgres, "postgres"
	}

	fsys, err := fs.Sub(files, dir)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return 0, fmt.Errorf("migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	return len(results), nil
}
