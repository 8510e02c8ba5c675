package eventsync

import (
	"context"
	"math/big"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

var (
	ErrNoCheckpoint   = errors.New("no checkpoint stored")
	ErrMinterNotFound = errors.New("minter has no stored mint events")
)

// Scope identifies the contract whose events a store holds.
type Scope struct {
	ChainID  int64
	Contract string
}

// MintEvent is a stored Minted log. Addresses and hashes are lowercase hex.
type MintEvent struct {
	ChainID     int64
	Contract    string
	TxHash      string
	LogIndex    uint
	BlockNumber uint64
	BlockHash   string
	Minter      string
	Quantity    *big.Int
	CreatedAt   time.Time
}

// Checkpoint is the last fully processed block of a contract.
type Checkpoint struct {
	Scope
	LastBlock uint64
	UpdatedAt time.Time
}

type Stats struct {
	TotalEvents   int64
	TotalMinted   *big.Int
	UniqueMinters int64
	LastBlock     null.Int64
}

type MinterStats struct {
	Address     string
	MintCount   int64
	TotalMinted *big.Int
	FirstBlock  uint64
	LastBlock   uint64
}

type ListParams struct {
	Limit  int
	Offset int
	// Minter optionally filters by lowercase minter address.
	Minter string
}

// Store persists mint events and the sync checkpoint of a single Scope.
type Store interface {
	Scope() Scope
	GetCheckpoint(ctx context.Context) (*Checkpoint, error)
	// SaveEvents inserts events, skipping already stored ones, and leaves the checkpoint alone.
	// It returns the events that were newly inserted.
	SaveEvents(ctx context.Context, events []*MintEvent) ([]*MintEvent, error)
	// SaveBatch is SaveEvents plus advancing the checkpoint to lastBlock unless it is already
	// further, in one transaction.
	SaveBatch(ctx context.Context, events []*MintEvent, lastBlock uint64) ([]*MintEvent, error)
	RemoveEvent(ctx context.Context, txHash string, logIndex uint) (bool, error)
	GetStats(ctx context.Context) (*Stats, error)
	GetMinterStats(ctx context.Context, minter string) (*MinterStats, error)
	ListEvents(ctx context.Context, params ListParams) ([]*MintEvent, error)
}

// Sink receives newly stored mint events.
type Sink interface {
	Publish(ctx context.Context, events []*MintEvent) error
}

// LogSource is the part of the chain client the sync needs.
type LogSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

// Observer is notified about sync progress. *metrics.Service implements it.
type Observer interface {
	MintEventsProcessed(n int)
	MintEventRemoved()
	SyncCheckpoint(block uint64)
	SyncReconnect()
}

type noopObserver struct{}

func (noopObserver) MintEventsProcessed(int) {}
func (noopObserver) MintEventRemoved()       {}
func (noopObserver) SyncCheckpoint(uint64)   {}
func (noopObserver) SyncReconnect()          {}
