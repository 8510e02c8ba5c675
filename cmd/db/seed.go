package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/allowlist"
	"github/chapool/nft-mint/internal/util/command"
	dbutil "github/chapool/nft-mint/internal/util/db"
)

func newSeed() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seeds the allowlist table",
		Long: `Inserts the configured allowlist into allowlist_entries

Reads ALLOWLIST_ADDRESSES when ALLOWLIST_SOURCE=env, ALLOWLIST_FILE otherwise.
Existing rows are kept, labels are updated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), seed)
		},
	}
}

func seed(ctx context.Context, cfg config.Server, db *sql.DB) error {
	var source allowlist.Source = allowlist.FileSource{Path: cfg.Allowlist.File}
	if cfg.Allowlist.Source == config.AllowlistSourceEnv {
		source = allowlist.StaticSource(cfg.Allowlist.Addresses)
	}

	entries, err := source.Load(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.Wrap(allowlist.ErrEmptyAllowlist, "nothing to seed")
	}

	return dbutil.WithTransaction(ctx, db, func(tx *sql.Tx) error {
		n, err := allowlist.ImportEntries(ctx, tx, entries)
		if err != nil {
			return err
		}

		log.Info().Int("entries", n).Msg("Seeded allowlist")
		return nil
	})
}
