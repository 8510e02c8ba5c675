package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util/command"
	dbutil "github/chapool/nft-mint/internal/util/db"
)

const dryRunFlag = "dry-run"

func newMigrate() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Executes all pending migrations",
		Long: `Executes all pending migrations

Migrations are embedded into the binary, see /migrations.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, _ config.Server, db *sql.DB) error {
				if dryRun {
					pending, err := dbutil.PendingMigrations(db)
					if err != nil {
						return err
					}
					for _, id := range pending {
						fmt.Println(id)
					}
					return nil
				}

				n, err := dbutil.ApplyMigrations(ctx, db)
				if err != nil {
					return err
				}

				log.Info().Int("count", n).Msg("Applied migrations")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, dryRunFlag, false, "Only print the pending migrations.")

	return cmd
}
