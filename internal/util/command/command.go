package command

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
)

const shutdownTimeout = 10 * time.Second

// NewSubcommandGroup returns a command that only groups subCommands and prints its help otherwise.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <subcommand>", name),
		Short: fmt.Sprintf("%s related subcommands", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}

// ConfigureLogger applies the logger config to the global zerolog instance.
func ConfigureLogger(cfg config.LoggerServer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
			w.Out = os.Stderr
		}))
	}
}

// WithServer initializes a fully wired server, runs f and shuts the server down again.
// The echo router is not initialized, f only gets access to the services.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	ConfigureLogger(cfg.Logger)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	start := s.Clock.Now()

	resultErr := f(ctx, s)
	if resultErr != nil {
		log.Error().Err(resultErr).Msg("Command failed")
	} else {
		log.Debug().Dur("duration", s.Clock.Now().Sub(start)).Msg("Command finished")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	return resultErr
}

// WithDB opens a database connection for commands that need nothing else, runs f and closes it.
func WithDB(ctx context.Context, cfg config.Server, f func(ctx context.Context, cfg config.Server, db *sql.DB) error) error {
	ConfigureLogger(cfg.Logger)

	db, err := api.NewDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return f(ctx, cfg, db)
}
