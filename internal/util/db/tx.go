package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/util"
)

type TxFn func(tx *sql.Tx) error

// WithTransaction runs fn inside a transaction. The transaction is rolled back when fn returns
// an error or panics and committed otherwise.
func WithTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	return WithConfiguredTransaction(ctx, db, nil, fn)
}

func WithConfiguredTransaction(ctx context.Context, db *sql.DB, options *sql.TxOptions, fn TxFn) (err error) {
	tx, err := db.BeginTx(ctx, options)
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to start transaction")
		return errors.Wrap(err, "failed to start transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				util.LogFromContext(ctx).Error().Err(txErr).Msg("Failed to roll back transaction after panic")
			}
			panic(p)
		}

		if err != nil {
			if txErr := tx.Rollback(); txErr != nil {
				util.LogFromContext(ctx).Error().Err(txErr).Msg("Failed to roll back transaction")
			}
			return
		}

		if err = tx.Commit(); err != nil {
			err = errors.Wrap(err, "failed to commit transaction")
		}
	}()

	return fn(tx)
}
