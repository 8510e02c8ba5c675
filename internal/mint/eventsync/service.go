package eventsync

import (
	"context"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/util"
)

const liveLogBuffer = 128

// Service keeps the mint_events table in sync with the Minted logs of one contract.
// Backfill and Run must not be called concurrently.
type Service struct {
	cfg      config.Sync
	source   LogSource
	binding  *contract.Binding
	store    Store
	sink     Sink
	observer Observer
}

// NewService wires a sync. sink and observer may be nil.
func NewService(cfg config.Sync, source LogSource, binding *contract.Binding, store Store, sink Sink, observer Observer) *Service {
	if sink == nil {
		sink = LogSink{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if cfg.BlockBatchSize == 0 {
		cfg.BlockBatchSize = 1
	}

	return &Service{
		cfg:      cfg,
		source:   source,
		binding:  binding,
		store:    store,
		sink:     sink,
		observer: observer,
	}
}

func (s *Service) logger(ctx context.Context) *zerolog.Logger {
	scope := s.store.Scope()
	l := util.LogFromContext(ctx).With().
		Int64("chain_id", scope.ChainID).
		Str("contract", scope.Contract).
		Logger()

	return &l
}

func (s *Service) rpcContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RPCTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.cfg.RPCTimeout)
}

// nextBlock returns the first block not yet covered by the checkpoint.
func (s *Service) nextBlock(ctx context.Context) (uint64, error) {
	cp, err := s.store.GetCheckpoint(ctx)
	if errors.Is(err, ErrNoCheckpoint) {
		return s.cfg.StartBlock, nil
	}
	if err != nil {
		return 0, err
	}

	return max(cp.LastBlock+1, s.cfg.StartBlock), nil
}

// safeHead returns the newest block with enough confirmations. ok is false while the chain is
// shorter than the confirmation depth.
func (s *Service) safeHead(ctx context.Context) (uint64, bool, error) {
	rpcCtx, cancel := s.rpcContext(ctx)
	defer cancel()

	head, err := s.source.BlockNumber(rpcCtx)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to get block number")
	}

	if head < s.cfg.Confirmations {
		return 0, false, nil
	}

	return head - s.cfg.Confirmations, true, nil
}

// Backfill stores all Minted events from the checkpoint up to the confirmed head, one batch of
// blocks per transaction, and returns the number of newly stored events.
func (s *Service) Backfill(ctx context.Context) (uint64, error) {
	log := s.logger(ctx)

	from, err := s.nextBlock(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get next block")
	}

	head, ok, err := s.safeHead(ctx)
	if err != nil {
		return 0, err
	}
	if !ok || from > head {
		log.Debug().Uint64("from_block", from).Msg("Event sync is up to date")
		return 0, nil
	}

	log.Info().Uint64("from_block", from).Uint64("to_block", head).Msg("Backfilling Minted events")

	var stored uint64
	for start := from; start <= head; {
		end := min(start+s.cfg.BlockBatchSize-1, head)

		n, err := s.syncRange(ctx, start, end)
		if err != nil {
			return stored, errors.Wrapf(err, "failed to sync blocks %d-%d", start, end)
		}
		stored += uint64(n) //nolint:gosec // n is a slice length

		log.Debug().
			Uint64("from_block", start).
			Uint64("to_block", end).
			Int("stored", n).
			Msg("Block range synced")

		start = end + 1
	}

	log.Info().Uint64("to_block", head).Uint64("stored", stored).Msg("Backfill finished")

	return stored, nil
}

func (s *Service) syncRange(ctx context.Context, from, to uint64) (int, error) {
	rpcCtx, cancel := s.rpcContext(ctx)
	defer cancel()

	logs, err := s.source.FilterLogs(rpcCtx, s.binding.MintedFilterQuery(from, &to))
	if err != nil {
		return 0, errors.Wrap(err, "failed to filter logs")
	}

	events := make([]*MintEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}

		event, err := s.decode(l)
		if err != nil {
			s.logger(ctx).Warn().Err(err).Str("tx_hash", l.TxHash.Hex()).Uint("log_index", l.Index).Msg("Skipping undecodable log")
			continue
		}

		events = append(events, event)
	}

	inserted, err := s.store.SaveBatch(ctx, events, to)
	if err != nil {
		return 0, err
	}
	s.observer.SyncCheckpoint(to)
	s.publish(ctx, inserted)

	return len(inserted), nil
}

func (s *Service) publish(ctx context.Context, inserted []*MintEvent) {
	if len(inserted) == 0 {
		return
	}

	s.observer.MintEventsProcessed(len(inserted))
	if err := s.sink.Publish(ctx, inserted); err != nil {
		s.logger(ctx).Warn().Err(err).Int("events", len(inserted)).Msg("Failed to publish mint events")
	}
}

func (s *Service) decode(l types.Log) (*MintEvent, error) {
	minted, err := s.binding.ParseMinted(l)
	if err != nil {
		return nil, err
	}

	scope := s.store.Scope()

	return &MintEvent{
		ChainID:     scope.ChainID,
		Contract:    scope.Contract,
		TxHash:      strings.ToLower(minted.TxHash.Hex()),
		LogIndex:    minted.LogIndex,
		BlockNumber: minted.BlockNumber,
		BlockHash:   strings.ToLower(minted.BlockHash.Hex()),
		Minter:      strings.ToLower(minted.Minter.Hex()),
		Quantity:    minted.Quantity,
	}, nil
}

// Run backfills, then follows live Minted logs until ctx is done. A failed subscription is
// re-established with exponential backoff and every new subscription first closes the gap
// to the chain head.
func (s *Service) Run(ctx context.Context) error {
	log := s.logger(ctx)
	backoff := s.cfg.ReconnectMinBackoff

	for {
		healthy, err := s.follow(ctx)
		if ctx.Err() != nil {
			log.Info().Msg("Event sync stopped")
			return nil
		}

		if healthy {
			backoff = s.cfg.ReconnectMinBackoff
		}

		s.observer.SyncReconnect()
		log.Warn().Err(err).Dur("backoff", backoff).Msg("Event subscription lost, reconnecting")

		select {
		case <-ctx.Done():
			log.Info().Msg("Event sync stopped")
			return nil
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, s.cfg.ReconnectMaxBackoff)
		if backoff <= 0 {
			backoff = time.Second
		}
	}
}

// follow runs one subscription. healthy reports whether the subscription got past its gap
// backfill before failing.
func (s *Service) follow(ctx context.Context) (bool, error) {
	query := s.binding.MintedFilterQuery(0, nil)
	query.FromBlock = nil

	logs := make(chan types.Log, liveLogBuffer)
	sub, err := s.source.SubscribeFilterLogs(ctx, query, logs)
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		return s.poll(ctx)
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to subscribe to Minted logs")
	}
	defer sub.Unsubscribe()

	if _, err := s.Backfill(ctx); err != nil {
		return false, errors.Wrap(err, "failed to backfill after subscribing")
	}

	s.logger(ctx).Info().Msg("Listening for Minted events")

	var poll <-chan time.Time
	if s.cfg.PollInterval > 0 {
		ticker := time.NewTicker(s.cfg.PollInterval)
		defer ticker.Stop()
		poll = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case err := <-sub.Err():
			if err == nil {
				err = errors.New("subscription closed")
			}
			return true, err
		case <-poll:
			if _, err := s.Backfill(ctx); err != nil {
				return true, err
			}
		case l := <-logs:
			if err := s.handleLive(ctx, l); err != nil {
				return true, err
			}
		}
	}
}

// poll is the fallback for endpoints without subscriptions, e.g. plain HTTP RPC URLs.
func (s *Service) poll(ctx context.Context) (bool, error) {
	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	s.logger(ctx).Info().Dur("interval", interval).Msg("RPC endpoint has no subscriptions, polling for Minted events")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := false
	for {
		if _, err := s.Backfill(ctx); err != nil {
			return healthy, err
		}
		healthy = true

		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Service) handleLive(ctx context.Context, l types.Log) error {
	log := s.logger(ctx)

	if l.Removed {
		removed, err := s.store.RemoveEvent(ctx, strings.ToLower(l.TxHash.Hex()), l.Index)
		if err != nil {
			return errors.Wrap(err, "failed to remove reorged mint event")
		}
		if removed {
			s.observer.MintEventRemoved()
			log.Warn().
				Str("tx_hash", l.TxHash.Hex()).
				Uint("log_index", l.Index).
				Uint64("block_number", l.BlockNumber).
				Msg("Removed reorged mint event")
		}

		return nil
	}

	// Unconfirmed logs are picked up by the periodic backfill once deep enough.
	if s.cfg.Confirmations > 0 {
		return nil
	}

	event, err := s.decode(l)
	if err != nil {
		log.Warn().Err(err).Str("tx_hash", l.TxHash.Hex()).Uint("log_index", l.Index).Msg("Skipping undecodable log")
		return nil
	}

	// Notifications can be dropped, so only range backfills move the checkpoint.
	inserted, err := s.store.SaveEvents(ctx, []*MintEvent{event})
	if err != nil {
		return errors.Wrap(err, "failed to store live mint event")
	}
	s.publish(ctx, inserted)

	return nil
}
