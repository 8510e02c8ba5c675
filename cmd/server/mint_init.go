package server

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/mint/eventsync"
	"github/chapool/nft-mint/internal/util/command"
)

// initializeSync connects to the chain and attaches the Minted event sync to s.
// The returned cleanup closes the RPC connection and the kafka writer.
func initializeSync(ctx context.Context, s *api.Server) (func(), error) {
	if !s.Config.Sync.Enabled {
		log.Info().Msg("Event sync is disabled, serving stored events only")
		return func() {}, nil
	}

	binding, err := command.Binding(s.Config)
	if err != nil {
		return nil, errors.Wrap(err, "event sync needs a contract")
	}

	client, err := command.DialChain(ctx, s.Config)
	if err != nil {
		return nil, err
	}

	sinks := eventsync.MultiSink{eventsync.LogSink{}}

	var kafka *eventsync.KafkaSink
	if len(s.Config.Kafka.Brokers) > 0 {
		kafka = eventsync.NewKafkaSink(s.Config.Kafka.Brokers, s.Config.Kafka.MintTopic)
		sinks = append(sinks, kafka)

		log.Info().
			Strs("brokers", s.Config.Kafka.Brokers).
			Str("topic", s.Config.Kafka.MintTopic).
			Msg("Publishing mint events to kafka")
	}

	s.Sync = eventsync.NewService(s.Config.Sync, client, binding, s.MintStore, sinks, s.Metrics)

	cleanup := func() {
		client.Close()

		if kafka != nil {
			if err := kafka.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close kafka writer")
			}
		}
	}

	if s.Config.Sync.BlockOnStartup {
		log.Info().Msg("Backfilling Minted events before accepting requests")

		if _, err := s.Sync.Backfill(ctx); err != nil {
			cleanup()
			return nil, errors.Wrap(err, "failed to backfill on startup")
		}
	}

	return cleanup, nil
}
