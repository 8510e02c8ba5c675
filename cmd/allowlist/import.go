package allowlist

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/allowlist"
	"github/chapool/nft-mint/internal/util/command"
	dbutil "github/chapool/nft-mint/internal/util/db"
)

func newImport() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Imports an allowlist file into the database",
		Long: `Imports a .json, .toml or plain text allowlist file into allowlist_entries.
The file is validated completely before anything is written.
Use it with ALLOWLIST_SOURCE=db.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, _ config.Server, db *sql.DB) error {
				return runImport(ctx, db, args[0])
			})
		},
	}
}

func runImport(ctx context.Context, db *sql.DB, path string) error {
	entries, err := allowlist.FileSource{Path: path}.Load(ctx)
	if err != nil {
		return err
	}

	// validates and deduplicates before the first write
	list, err := allowlist.FromEntries(entries)
	if err != nil {
		return err
	}

	return dbutil.WithTransaction(ctx, db, func(tx *sql.Tx) error {
		n, err := allowlist.ImportEntries(ctx, tx, list.Entries())
		if err != nil {
			return err
		}

		log.Info().Str("file", path).Int("entries", n).Msg("Imported allowlist")
		return nil
	})
}
