package probe

import (
	"context"
	"database/sql"

	"github.com/dropbox/godropbox/time2"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api/handlers/common"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util/command"
)

func newReadiness() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Runs the readiness probes of GET /-/ready against the configured database.
Exits 1 when a probe fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, cfg config.Server, db *sql.DB) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Management.ReadinessTimeout)
				defer cancel()

				report, errs := common.ProbeReadiness(ctx, db, time2.DefaultClock)
				return printReport(verbose, report, errs, "readiness")
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "Print the probe report.")

	return cmd
}
