package eventsync

import (
	"context"
	"database/sql"
	"math/big"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/models"
	dbutil "github/chapool/nft-mint/internal/util/db"
)

type PostgresStore struct {
	db    *sql.DB
	scope Scope
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, scope Scope) *PostgresStore {
	scope.Contract = strings.ToLower(scope.Contract)

	return &PostgresStore{
		db:    db,
		scope: scope,
	}
}

func (s *PostgresStore) Scope() Scope {
	return s.scope
}

func (s *PostgresStore) GetCheckpoint(ctx context.Context) (*Checkpoint, error) {
	row, err := models.FindSyncCheckpoint(ctx, s.db, s.scope.ChainID, s.scope.Contract)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCheckpoint
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query checkpoint")
	}

	return &Checkpoint{
		Scope:     s.scope,
		LastBlock: uint64(row.LastBlock), //nolint:gosec // stored from a uint64
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (s *PostgresStore) SaveEvents(ctx context.Context, events []*MintEvent) ([]*MintEvent, error) {
	var inserted []*MintEvent

	err := dbutil.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		inserted, err = s.insertEvents(ctx, tx, events)
		return err
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

func (s *PostgresStore) SaveBatch(ctx context.Context, events []*MintEvent, lastBlock uint64) ([]*MintEvent, error) {
	var inserted []*MintEvent

	err := dbutil.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		inserted, err = s.insertEvents(ctx, tx, events)
		if err != nil {
			return err
		}

		return s.advanceCheckpoint(ctx, tx, lastBlock)
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

func (s *PostgresStore) insertEvents(ctx context.Context, exec boil.ContextExecutor, events []*MintEvent) ([]*MintEvent, error) {
	var inserted []*MintEvent

	for _, e := range events {
		row := &models.MintEvent{
			ChainID:         s.scope.ChainID,
			ContractAddress: s.scope.Contract,
			TXHash:          e.TxHash,
			LogIndex:        int(e.LogIndex),      //nolint:gosec // log indexes are small
			BlockNumber:     int64(e.BlockNumber), //nolint:gosec // block numbers fit int64
			BlockHash:       e.BlockHash,
			Minter:          e.Minter,
			Quantity:        e.Quantity.String(),
		}

		exists, err := row.Exists(ctx, exec)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check mint event %s:%d", e.TxHash, e.LogIndex)
		}
		if exists {
			continue
		}

		if err := row.Insert(ctx, exec, boil.Infer()); err != nil {
			return nil, errors.Wrapf(err, "failed to insert mint event %s:%d", e.TxHash, e.LogIndex)
		}

		e.CreatedAt = row.CreatedAt
		inserted = append(inserted, e)
	}

	return inserted, nil
}

var keepHighestBlock = models.UpsertUpdateSet(
	"last_block = GREATEST(sync_checkpoints.last_block, EXCLUDED.last_block), updated_at = EXCLUDED.updated_at",
)

func (s *PostgresStore) advanceCheckpoint(ctx context.Context, exec boil.ContextExecutor, lastBlock uint64) error {
	cp := &models.SyncCheckpoint{
		ChainID:         s.scope.ChainID,
		ContractAddress: s.scope.Contract,
		LastBlock:       int64(lastBlock), //nolint:gosec // block numbers fit int64
	}

	err := cp.Upsert(ctx, exec, true,
		[]string{models.SyncCheckpointColumns.ChainID, models.SyncCheckpointColumns.ContractAddress},
		boil.Whitelist(models.SyncCheckpointColumns.LastBlock, models.SyncCheckpointColumns.UpdatedAt),
		boil.Infer(),
		keepHighestBlock,
	)
	if err != nil {
		return errors.Wrap(err, "failed to upsert checkpoint")
	}

	return nil
}

func (s *PostgresStore) RemoveEvent(ctx context.Context, txHash string, logIndex uint) (bool, error) {
	n, err := models.MintEvents(
		models.MintEventWhere.ChainID.EQ(s.scope.ChainID),
		models.MintEventWhere.ContractAddress.EQ(s.scope.Contract),
		models.MintEventWhere.TXHash.EQ(strings.ToLower(txHash)),
		models.MintEventWhere.LogIndex.EQ(int(logIndex)), //nolint:gosec // log indexes are small
	).DeleteAll(ctx, s.db)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete mint event")
	}

	return n > 0, nil
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var total string
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0)::text, COUNT(DISTINCT minter)
		FROM mint_events
		WHERE chain_id = $1 AND contract_address = $2
	`, s.scope.ChainID, s.scope.Contract).Scan(&stats.TotalEvents, &total, &stats.UniqueMinters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query mint stats")
	}

	if stats.TotalMinted, err = parseNumeric(total); err != nil {
		return nil, err
	}

	cp, err := s.GetCheckpoint(ctx)
	switch {
	case errors.Is(err, ErrNoCheckpoint):
	case err != nil:
		return nil, err
	default:
		stats.LastBlock = null.Int64From(int64(cp.LastBlock)) //nolint:gosec // block numbers fit int64
	}

	return stats, nil
}

func (s *PostgresStore) GetMinterStats(ctx context.Context, minter string) (*MinterStats, error) {
	stats := &MinterStats{Address: strings.ToLower(minter)}

	var (
		total       string
		first, last sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0)::text, MIN(block_number), MAX(block_number)
		FROM mint_events
		WHERE chain_id = $1 AND contract_address = $2 AND minter = $3
	`, s.scope.ChainID, s.scope.Contract, stats.Address).Scan(&stats.MintCount, &total, &first, &last)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query minter stats")
	}

	if stats.MintCount == 0 {
		return nil, ErrMinterNotFound
	}

	if stats.TotalMinted, err = parseNumeric(total); err != nil {
		return nil, err
	}
	stats.FirstBlock = uint64(first.Int64) //nolint:gosec // stored from a uint64
	stats.LastBlock = uint64(last.Int64)   //nolint:gosec // stored from a uint64

	return stats, nil
}

func (s *PostgresStore) ListEvents(ctx context.Context, params ListParams) ([]*MintEvent, error) {
	mods := []qm.QueryMod{
		models.MintEventWhere.ChainID.EQ(s.scope.ChainID),
		models.MintEventWhere.ContractAddress.EQ(s.scope.Contract),
		qm.OrderBy(models.MintEventColumns.BlockNumber + " DESC, " + models.MintEventColumns.LogIndex + " DESC"),
		qm.Limit(params.Limit),
		qm.Offset(params.Offset),
	}
	if params.Minter != "" {
		mods = append(mods, models.MintEventWhere.Minter.EQ(strings.ToLower(params.Minter)))
	}

	rows, err := models.MintEvents(mods...).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query mint events")
	}

	events := make([]*MintEvent, 0, len(rows))
	for _, row := range rows {
		quantity, err := parseNumeric(row.Quantity)
		if err != nil {
			return nil, err
		}

		events = append(events, &MintEvent{
			ChainID:     row.ChainID,
			Contract:    row.ContractAddress,
			TxHash:      row.TXHash,
			LogIndex:    uint(row.LogIndex),      //nolint:gosec // stored from a uint
			BlockNumber: uint64(row.BlockNumber), //nolint:gosec // stored from a uint64
			BlockHash:   row.BlockHash,
			Minter:      row.Minter,
			Quantity:    quantity,
			CreatedAt:   row.CreatedAt,
		})
	}

	return events, nil
}

func parseNumeric(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid numeric value %q", s)
	}

	return n, nil
}
