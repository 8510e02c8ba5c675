package eventsync

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/util"
)

// LogSink logs every event at info level.
type LogSink struct{}

func (LogSink) Publish(ctx context.Context, events []*MintEvent) error {
	log := util.LogFromContext(ctx)
	for _, e := range events {
		log.Info().
			Int64("chain_id", e.ChainID).
			Str("contract", e.Contract).
			Str("minter", e.Minter).
			Str("quantity", e.Quantity.String()).
			Uint64("block_number", e.BlockNumber).
			Str("tx_hash", e.TxHash).
			Uint("log_index", e.LogIndex).
			Msg("Minted")
	}

	return nil
}

// MultiSink publishes to every sink and returns the first error after trying all of them.
type MultiSink []Sink

func (m MultiSink) Publish(ctx context.Context, events []*MintEvent) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.Publish(ctx, events); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "failed to publish mint events")
		}
	}

	return firstErr
}
