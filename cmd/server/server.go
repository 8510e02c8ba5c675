package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/handlers/common"
	"github/chapool/nft-mint/internal/api/router"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util/command"
	dbutil "github/chapool/nft-mint/internal/util/db"
	"golang.org/x/sync/errgroup"
)

const (
	probeFlag   = "probe"
	migrateFlag = "migrate"

	shutdownTimeout = 10 * time.Second
)

type Flags struct {
	Probe   bool
	Migrate bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP server and the Minted event sync

Requires configuration through ENV and
and a fully migrated PostgreSQL database.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Probe, probeFlag, "p", false, "Probe readiness before startup.")
	cmd.Flags().BoolVarP(&flags.Migrate, migrateFlag, "m", false, "Apply pending migrations before startup.")

	return cmd
}

func runServer(flags Flags) error {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.Probe || flags.Migrate {
		if err := prepareDatabase(ctx, cfg, flags); err != nil {
			return err
		}
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	if err := router.Init(s); err != nil {
		return errors.Wrap(err, "failed to initialize router")
	}

	cleanup, err := initializeSync(ctx, s)
	if err != nil {
		s.Shutdown(context.Background())
		return err
	}
	defer cleanup()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})

	if s.Sync != nil {
		g.Go(func() error {
			return s.Sync.Run(gCtx)
		})
	}

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
			return errors.New("failed to gracefully shut down server")
		}

		log.Info().Msg("Server stopped")
		return nil
	})

	log.Info().Str("listen_address", cfg.Echo.ListenAddress).Msg("Starting server")

	return g.Wait()
}

func prepareDatabase(ctx context.Context, cfg config.Server, flags Flags) error {
	db, err := api.NewDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if flags.Probe {
		probeCtx, cancel := context.WithTimeout(ctx, cfg.Management.ReadinessTimeout)
		defer cancel()

		if _, errs := common.ProbeReadiness(probeCtx, db, time2.DefaultClock); len(errs) > 0 {
			return errors.Errorf("readiness probe failed with %d errors: %v", len(errs), errs[0])
		}
	}

	if flags.Migrate {
		n, err := dbutil.ApplyMigrations(ctx, db)
		if err != nil {
			return err
		}
		log.Info().Int("count", n).Msg("Applied migrations")
	}

	return nil
}
