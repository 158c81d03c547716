package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/colorpref/internal/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations brings the preferences schema up to date. Each database gets
// its own goose provider, so no package-level goose state is touched.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.Component(ctx, "sqlite")

	sources, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, sources)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		log.Info().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("applied preferences migration")
	}

	if len(results) == 0 {
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		log.Debug().Int64("version", version).Msg("preferences schema current")
	}
	return nil
}
