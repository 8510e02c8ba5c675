package probe

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api/handlers/common"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util/command"
)

func newLiveness() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs the liveness probes of GET /-/healthy against the configured database.
Exits 1 when a probe fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, cfg config.Server, db *sql.DB) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Management.LivenessTimeout)
				defer cancel()

				report, errs := common.ProbeLiveness(ctx, db, time2.DefaultClock)
				return printReport(verbose, report, errs, "liveness")
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "Print the probe report.")

	return cmd
}

func printReport(verbose bool, report string, errs []error, name string) error {
	if verbose || len(errs) > 0 {
		fmt.Print(report)
	}

	if len(errs) > 0 {
		return errors.Errorf("%s probe failed with %d errors", name, len(errs))
	}

	return nil
}
