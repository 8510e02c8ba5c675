// Package chaintest provides an in-memory chain.Backend for tests.
package chaintest

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend mines every sent transaction immediately into its own block. Hooks override the
// default behavior of single calls.
type Backend struct {
	ChainIDValue *big.Int
	BaseFee      *big.Int
	TipCap       *big.Int
	GasEstimate  uint64

	// EstimateGasFn, when set, replaces GasEstimate.
	EstimateGasFn func(msg ethereum.CallMsg) (uint64, error)
	// CallFn answers CallContract.
	CallFn func(msg ethereum.CallMsg, block *big.Int) ([]byte, error)
	// ReceiptFn builds the receipt of a sent transaction. Defaults to a successful receipt.
	ReceiptFn func(tx *types.Transaction, blockNumber uint64) *types.Receipt
	// PendingReceipts makes TransactionReceipt return ethereum.NotFound this many times first.
	PendingReceipts int

	mu       sync.Mutex
	nonces   map[common.Address]uint64
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	block    uint64
}

func NewBackend(chainID int64) *Backend {
	return &Backend{
		ChainIDValue: big.NewInt(chainID),
		BaseFee:      big.NewInt(1_000_000_000),
		TipCap:       big.NewInt(1_500_000_000),
		GasEstimate:  100_000,
		nonces:       map[common.Address]uint64{},
		receipts:     map[common.Hash]*types.Receipt{},
	}
}

func (b *Backend) ChainID(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.ChainIDValue), nil
}

func (b *Backend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.nonces[account], nil
}

func (b *Backend) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.TipCap), nil
}

func (b *Backend) HeaderByNumber(_ context.Context, _ *big.Int) (*types.Header, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return &types.Header{Number: new(big.Int).SetUint64(b.block), BaseFee: b.BaseFee}, nil
}

func (b *Backend) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	if b.EstimateGasFn != nil {
		return b.EstimateGasFn(msg)
	}

	return b.GasEstimate, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	sender, err := types.Sender(types.LatestSignerForChainID(b.ChainIDValue), tx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nonces[sender] = tx.Nonce() + 1
	b.block++
	b.sent = append(b.sent, tx)

	var receipt *types.Receipt
	if b.ReceiptFn != nil {
		receipt = b.ReceiptFn(tx, b.block)
	}
	if receipt == nil {
		receipt = &types.Receipt{Status: types.ReceiptStatusSuccessful}
	}
	receipt.TxHash = tx.Hash()
	receipt.BlockNumber = new(big.Int).SetUint64(b.block)
	if tx.To() == nil && receipt.ContractAddress == (common.Address{}) {
		receipt.ContractAddress = ContractAddress(sender, tx.Nonce())
	}
	b.receipts[tx.Hash()] = receipt

	return nil
}

func (b *Backend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.PendingReceipts > 0 {
		b.PendingReceipts--
		return nil, ethereum.NotFound
	}

	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

func (b *Backend) CallContract(_ context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	if b.CallFn != nil {
		return b.CallFn(msg, block)
	}

	return nil, nil
}

// Sent returns the transactions broadcasted so far.
func (b *Backend) Sent() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*types.Transaction, len(b.sent))
	copy(out, b.sent)

	return out
}
