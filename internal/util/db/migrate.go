package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/migrations"
)

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       migrations.Dir,
	}
}

// ApplyMigrations runs all pending embedded migrations and returns how many were applied.
func ApplyMigrations(ctx context.Context, db *sql.DB) (int, error) {
	migrate.SetTable(config.DatabaseMigrationTable)

	n, err := migrate.ExecContext(ctx, db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "failed to apply migrations")
	}

	return n, nil
}

// PendingMigrations lists the ids of migrations not yet applied.
func PendingMigrations(db *sql.DB) ([]string, error) {
	migrate.SetTable(config.DatabaseMigrationTable)

	planned, _, err := migrate.PlanMigration(db, "postgres", migrationSource(), migrate.Up, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to plan migrations")
	}

	ids := make([]string, 0, len(planned))
	for _, m := range planned {
		ids = append(ids, m.Id)
	}

	return ids, nil
}
