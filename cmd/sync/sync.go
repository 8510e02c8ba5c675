package sync

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/eventsync"
	"github/chapool/nft-mint/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Backfills Minted events once",
		Long: `Stores all Minted events from the last checkpoint up to the confirmed chain head
and exits. The server command keeps syncing continuously.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), runSync)
		},
	}
}

func runSync(ctx context.Context, cfg config.Server, db *sql.DB) error {
	binding, err := command.Binding(cfg)
	if err != nil {
		return err
	}

	client, err := command.DialChain(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	svc := eventsync.NewService(cfg.Sync, client, binding, api.NewMintStore(cfg, db), eventsync.LogSink{}, nil)

	start := time.Now()
	stored, err := svc.Backfill(ctx)
	if err != nil {
		return err
	}

	log.Info().Uint64("stored", stored).Dur("duration", time.Since(start)).Msg("Sync finished")

	return nil
}
