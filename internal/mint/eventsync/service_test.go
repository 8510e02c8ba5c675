package eventsync_test

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/mint/eventsync"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	minterA         = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	minterB         = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

type memoryStore struct {
	mu         sync.Mutex
	scope      eventsync.Scope
	checkpoint *uint64
	events     map[string]*eventsync.MintEvent
	failSave   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		scope:  eventsync.Scope{ChainID: 31337, Contract: strings.ToLower(contractAddress.Hex())},
		events: map[string]*eventsync.MintEvent{},
	}
}

func eventKey(txHash string, logIndex uint) string {
	return fmt.Sprintf("%s:%d", txHash, logIndex)
}

func (m *memoryStore) Scope() eventsync.Scope { return m.scope }

func (m *memoryStore) GetCheckpoint(context.Context) (*eventsync.Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkpoint == nil {
		return nil, eventsync.ErrNoCheckpoint
	}

	return &eventsync.Checkpoint{Scope: m.scope, LastBlock: *m.checkpoint}, nil
}

func (m *memoryStore) insert(events []*eventsync.MintEvent) []*eventsync.MintEvent {
	var inserted []*eventsync.MintEvent
	for _, e := range events {
		key := eventKey(e.TxHash, e.LogIndex)
		if _, ok := m.events[key]; ok {
			continue
		}
		m.events[key] = e
		inserted = append(inserted, e)
	}

	return inserted
}

func (m *memoryStore) SaveEvents(_ context.Context, events []*eventsync.MintEvent) ([]*eventsync.MintEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSave != nil {
		return nil, m.failSave
	}

	return m.insert(events), nil
}

func (m *memoryStore) SaveBatch(_ context.Context, events []*eventsync.MintEvent, lastBlock uint64) ([]*eventsync.MintEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSave != nil {
		return nil, m.failSave
	}

	inserted := m.insert(events)
	if m.checkpoint == nil || *m.checkpoint < lastBlock {
		m.checkpoint = &lastBlock
	}

	return inserted, nil
}

func (m *memoryStore) RemoveEvent(_ context.Context, txHash string, logIndex uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := eventKey(txHash, logIndex)
	if _, ok := m.events[key]; !ok {
		return false, nil
	}
	delete(m.events, key)

	return true, nil
}

func (m *memoryStore) GetStats(context.Context) (*eventsync.Stats, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryStore) GetMinterStats(context.Context, string) (*eventsync.MinterStats, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryStore) ListEvents(context.Context, eventsync.ListParams) ([]*eventsync.MintEvent, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryStore) blocks() []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]uint64, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.BlockNumber)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (m *memoryStore) lastBlock() (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkpoint == nil {
		return 0, false
	}

	return *m.checkpoint, true
}

type fakeSubscription struct {
	errCh chan error
	once  sync.Once
}

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.errCh) })
}

func (s *fakeSubscription) Err() <-chan error {
	return s.errCh
}

type fakeSource struct {
	mu          sync.Mutex
	head        uint64
	logs        []types.Log
	queries     [][2]uint64
	subscribeFn func() error
	subscribed  chan chan<- types.Log
	subs        []*fakeSubscription
}

func newFakeSource(head uint64, logs ...types.Log) *fakeSource {
	return &fakeSource{
		head:       head,
		logs:       logs,
		subscribed: make(chan chan<- types.Log, 8),
	}
}

func (f *fakeSource) BlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.head, nil
}

func (f *fakeSource) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	from, to := q.FromBlock.Uint64(), q.ToBlock.Uint64()
	f.queries = append(f.queries, [2]uint64{from, to})

	var out []types.Log
	for _, l := range f.logs {
		if l.BlockNumber >= from && l.BlockNumber <= to {
			out = append(out, l)
		}
	}

	return out, nil
}

func (f *fakeSource) SubscribeFilterLogs(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if q.FromBlock != nil {
		return nil, errors.New("subscription must not carry a from block")
	}
	if f.subscribeFn != nil {
		if err := f.subscribeFn(); err != nil {
			return nil, err
		}
	}

	sub := &fakeSubscription{errCh: make(chan error, 1)}
	f.subs = append(f.subs, sub)
	f.subscribed <- ch

	return sub, nil
}

func (f *fakeSource) addLog(l types.Log) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logs = append(f.logs, l)
	if l.BlockNumber > f.head {
		f.head = l.BlockNumber
	}
}

func (f *fakeSource) rangesQueried() [][2]uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([][2]uint64(nil), f.queries...)
}

type countingObserver struct {
	mu         sync.Mutex
	processed  int
	removed    int
	checkpoint uint64
	reconnects int
}

func (o *countingObserver) MintEventsProcessed(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.processed += n
}

func (o *countingObserver) MintEventRemoved() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.removed++
}

func (o *countingObserver) SyncCheckpoint(block uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.checkpoint = block
}

func (o *countingObserver) SyncReconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reconnects++
}

func (o *countingObserver) reconnectCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reconnects
}

type recordingSink struct {
	mu     sync.Mutex
	events []*eventsync.MintEvent
}

func (r *recordingSink) Publish(_ context.Context, events []*eventsync.MintEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func binding(t *testing.T) *contract.Binding {
	t.Helper()

	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	return contract.NewBinding(contractAddress, parsed)
}

func mintedLog(t *testing.T, b *contract.Binding, minter common.Address, quantity int64, block uint64, index uint) types.Log {
	t.Helper()

	data, err := b.ABI.Events[contract.EventMinted].Inputs.NonIndexed().Pack(big.NewInt(quantity))
	require.NoError(t, err)

	return types.Log{
		Address:     b.Address,
		Topics:      []common.Hash{b.MintedTopic(), common.BytesToHash(minter.Bytes())},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.BigToHash(new(big.Int).SetUint64(block*1000 + uint64(index) + 1)),
		Index:       index,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block + 0xb000)),
	}
}

func syncConfig() config.Sync {
	return config.Sync{
		Enabled:             true,
		StartBlock:          0,
		BlockBatchSize:      2,
		RPCTimeout:          time.Second,
		ReconnectMinBackoff: time.Millisecond,
		ReconnectMaxBackoff: 5 * time.Millisecond,
	}
}

func TestBackfillFromBlockZero(t *testing.T) {
	b := binding(t)
	source := newFakeSource(5,
		mintedLog(t, b, minterA, 1, 0, 0),
		mintedLog(t, b, minterB, 2, 3, 0),
		mintedLog(t, b, minterA, 3, 5, 1),
	)
	store := newMemoryStore()
	sink := &recordingSink{}
	observer := &countingObserver{}

	svc := eventsync.NewService(syncConfig(), source, b, store, sink, observer)

	stored, err := svc.Backfill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stored)

	assert.Equal(t, [][2]uint64{{0, 1}, {2, 3}, {4, 5}}, source.rangesQueried())
	assert.Equal(t, []uint64{0, 3, 5}, store.blocks())

	last, ok := store.lastBlock()
	require.True(t, ok)
	assert.Equal(t, uint64(5), last)

	assert.Equal(t, 3, sink.count())
	assert.Equal(t, 3, observer.processed)
	assert.Equal(t, uint64(5), observer.checkpoint)

	for _, e := range sink.events {
		assert.Equal(t, strings.ToLower(e.Minter), e.Minter)
		assert.Equal(t, store.scope.Contract, e.Contract)
	}
}

func TestBackfillResumesAfterCheckpoint(t *testing.T) {
	b := binding(t)
	source := newFakeSource(5,
		mintedLog(t, b, minterA, 1, 2, 0),
		mintedLog(t, b, minterB, 2, 5, 0),
	)
	store := newMemoryStore()
	cp := uint64(3)
	store.checkpoint = &cp

	svc := eventsync.NewService(syncConfig(), source, b, store, nil, nil)

	stored, err := svc.Backfill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored)
	assert.Equal(t, [][2]uint64{{4, 5}}, source.rangesQueried())
	assert.Equal(t, []uint64{5}, store.blocks())
}

func TestBackfillHonorsStartBlockAndConfirmations(t *testing.T) {
	b := binding(t)
	source := newFakeSource(10,
		mintedLog(t, b, minterA, 1, 1, 0),
		mintedLog(t, b, minterA, 1, 4, 0),
		mintedLog(t, b, minterA, 1, 9, 0),
	)
	store := newMemoryStore()

	cfg := syncConfig()
	cfg.StartBlock = 3
	cfg.BlockBatchSize = 100
	cfg.Confirmations = 2

	svc := eventsync.NewService(cfg, source, b, store, nil, nil)

	_, err := svc.Backfill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][2]uint64{{3, 8}}, source.rangesQueried())
	assert.Equal(t, []uint64{4}, store.blocks())

	last, _ := store.lastBlock()
	assert.Equal(t, uint64(8), last)
}

func TestBackfillUpToDate(t *testing.T) {
	b := binding(t)
	source := newFakeSource(1)
	store := newMemoryStore()

	cfg := syncConfig()
	cfg.Confirmations = 5

	svc := eventsync.NewService(cfg, source, b, store, nil, nil)

	stored, err := svc.Backfill(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
	assert.Empty(t, source.rangesQueried())

	_, ok := store.lastBlock()
	assert.False(t, ok)
}

func TestBackfillCountsRedeliveredEventsOnce(t *testing.T) {
	b := binding(t)
	source := newFakeSource(3, mintedLog(t, b, minterA, 2, 1, 0))
	store := newMemoryStore()
	sink := &recordingSink{}

	svc := eventsync.NewService(syncConfig(), source, b, store, sink, nil)

	_, err := svc.Backfill(context.Background())
	require.NoError(t, err)

	// simulate a restart that lost the checkpoint
	store.checkpoint = nil

	stored, err := svc.Backfill(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
	assert.Equal(t, 1, sink.count())
	assert.Len(t, store.blocks(), 1)
}

func TestBackfillStoreFailure(t *testing.T) {
	b := binding(t)
	source := newFakeSource(3, mintedLog(t, b, minterA, 2, 1, 0))
	store := newMemoryStore()
	store.failSave = errors.New("db down")

	svc := eventsync.NewService(syncConfig(), source, b, store, nil, nil)

	_, err := svc.Backfill(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")

	_, ok := store.lastBlock()
	assert.False(t, ok)
}

func TestRunFollowsLiveEvents(t *testing.T) {
	b := binding(t)
	source := newFakeSource(2, mintedLog(t, b, minterA, 1, 1, 0))
	store := newMemoryStore()
	observer := &countingObserver{}

	svc := eventsync.NewService(syncConfig(), source, b, store, nil, observer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	var ch chan<- types.Log
	select {
	case ch = <-source.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not subscribe")
	}

	require.Eventually(t, func() bool {
		last, ok := store.lastBlock()
		return ok && last == 2
	}, 5*time.Second, 10*time.Millisecond)

	live := mintedLog(t, b, minterB, 3, 7, 2)
	source.addLog(live)
	ch <- live

	require.Eventually(t, func() bool {
		return len(store.blocks()) == 2
	}, 5*time.Second, 10*time.Millisecond)

	// live events never move the checkpoint
	last, _ := store.lastBlock()
	assert.Equal(t, uint64(2), last)

	removed := live
	removed.Removed = true
	ch <- removed

	require.Eventually(t, func() bool {
		return len(store.blocks()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not stop")
	}

	observer.mu.Lock()
	defer observer.mu.Unlock()
	assert.Equal(t, 1, observer.removed)
	assert.Equal(t, 2, observer.processed)
}

func TestRunBackfillRecoversDroppedNotification(t *testing.T) {
	b := binding(t)
	source := newFakeSource(2)
	store := newMemoryStore()

	cfg := syncConfig()
	cfg.PollInterval = 20 * time.Millisecond

	svc := eventsync.NewService(cfg, source, b, store, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	var ch chan<- types.Log
	select {
	case ch = <-source.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not subscribe")
	}

	require.Eventually(t, func() bool {
		last, ok := store.lastBlock()
		return ok && last == 2
	}, 5*time.Second, 10*time.Millisecond)

	// mined but its notification never arrives
	source.addLog(mintedLog(t, b, minterA, 1, 4, 0))

	live := mintedLog(t, b, minterB, 2, 7, 0)
	source.addLog(live)
	ch <- live

	require.Eventually(t, func() bool {
		last, _ := store.lastBlock()
		return last == 7 && len(store.blocks()) == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []uint64{4, 7}, store.blocks())

	cancel()
	require.NoError(t, <-done)
}

func TestRunReconnectsAndClosesGap(t *testing.T) {
	b := binding(t)
	source := newFakeSource(1)
	store := newMemoryStore()
	observer := &countingObserver{}

	attempts := 0
	source.subscribeFn = func() error {
		attempts++
		if attempts == 1 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}

	svc := eventsync.NewService(syncConfig(), source, b, store, nil, observer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	select {
	case <-source.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not resubscribe")
	}
	assert.Equal(t, 1, observer.reconnectCount())

	// events emitted while the subscription is down
	source.addLog(mintedLog(t, b, minterA, 1, 4, 0))

	source.mu.Lock()
	sub := source.subs[0]
	source.mu.Unlock()
	sub.errCh <- errors.New("websocket: close 1006")

	select {
	case <-source.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not resubscribe after subscription error")
	}

	require.Eventually(t, func() bool {
		return len(store.blocks()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, observer.reconnectCount())

	cancel()
	require.NoError(t, <-done)
}

func TestRunPollsWithoutSubscriptions(t *testing.T) {
	b := binding(t)
	source := newFakeSource(1)
	source.subscribeFn = func() error {
		return errors.Wrap(rpc.ErrNotificationsUnsupported, "eth_subscribe failed on all RPC endpoints")
	}
	store := newMemoryStore()

	cfg := syncConfig()
	cfg.PollInterval = 10 * time.Millisecond

	svc := eventsync.NewService(cfg, source, b, store, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	source.addLog(mintedLog(t, b, minterB, 2, 3, 0))

	require.Eventually(t, func() bool {
		return len(store.blocks()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
