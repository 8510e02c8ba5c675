package common

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/util"
)

// ProbeReadiness checks the dependencies needed to serve check-address and the mint queries.
// It returns a human readable report and every error encountered.
func ProbeReadiness(ctx context.Context, database *sql.DB, clock time2.Clock) (string, []error) {
	var (
		b    strings.Builder
		errs []error
	)

	start := clock.Now()
	if err := probeDatabasePing(ctx, database); err != nil {
		errs = append(errs, err)
		fmt.Fprintf(&b, "Ready database: Ping failed: %v\n", err)
	} else {
		fmt.Fprintf(&b, "Ready database: Ping succeeded in %s\n", clock.Now().Sub(start))
	}

	if len(errs) == 0 {
		util.LogFromContext(ctx).Debug().Msg("Readiness probes succeeded")
	}

	return b.String(), errs
}

// ProbeLiveness additionally checks that the database answers queries, not only pings.
func ProbeLiveness(ctx context.Context, database *sql.DB, clock time2.Clock) (string, []error) {
	report, errs := ProbeReadiness(ctx, database, clock)

	var b strings.Builder
	b.WriteString(report)

	start := clock.Now()
	n, err := probeDatabaseQuery(ctx, database)
	if err != nil {
		errs = append(errs, err)
		fmt.Fprintf(&b, "Alive database: Query failed: %v\n", err)
	} else {
		fmt.Fprintf(&b, "Alive database: %d migrations applied, query took %s\n", n, clock.Now().Sub(start))
	}

	return b.String(), errs
}

func probeDatabasePing(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return errors.New("database is not initialized")
	}

	if err := database.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	return nil
}

func probeDatabaseQuery(ctx context.Context, database *sql.DB) (int, error) {
	if database == nil {
		return 0, errors.New("database is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM migrations`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to query migrations")
	}

	return n, nil
}
