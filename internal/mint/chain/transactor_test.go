package chain_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/chain/chaintest"
)

const ownerKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newTransactor(t *testing.T, backend *chaintest.Backend) *chain.Transactor {
	t.Helper()

	key, err := crypto.HexToECDSA(ownerKeyHex)
	require.NoError(t, err)

	tr, err := chain.NewTransactor(t.Context(), backend, key)
	require.NoError(t, err)
	tr.PollInterval = time.Millisecond

	return tr
}

func TestTransactorSend(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	tr := newTransactor(t, backend)

	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), tr.From())
	assert.Equal(t, int64(31337), tr.ChainID().Int64())

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	receipt, err := tr.Send(t.Context(), &to, big.NewInt(99), []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	_, err = tr.Send(t.Context(), &to, nil, nil)
	require.NoError(t, err)

	sent := backend.Sent()
	require.Len(t, sent, 2)

	tx := sent[0]
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, uint64(0), tx.Nonce())
	assert.Equal(t, uint64(1), sent[1].Nonce())
	assert.Equal(t, uint64(120_000), tx.Gas())
	assert.Equal(t, big.NewInt(1_500_000_000), tx.GasTipCap())
	// 2 * baseFee + tip
	assert.Equal(t, big.NewInt(3_500_000_000), tx.GasFeeCap())
	assert.Equal(t, big.NewInt(99), tx.Value())
	assert.Equal(t, &to, tx.To())
	assert.Equal(t, receipt.TxHash, tx.Hash())
}

func TestTransactorWaitsForPendingReceipt(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	backend.PendingReceipts = 3
	tr := newTransactor(t, backend)

	receipt, err := tr.Send(t.Context(), nil, nil, []byte{0x60, 0x00})
	require.NoError(t, err)
	assert.Equal(t, chaintest.ContractAddress(tr.From(), 0), receipt.ContractAddress)
}

func TestTransactorReceiptTimeout(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	backend.PendingReceipts = 1 << 30
	tr := newTransactor(t, backend)
	tr.ReceiptTimeout = 20 * time.Millisecond

	_, err := tr.Send(t.Context(), nil, nil, []byte{0x60, 0x00})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTransactorRevertOnEstimate(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	backend.EstimateGasFn = func(_ ethereum.CallMsg) (uint64, error) {
		return 0, errors.New("Error: VM Exception while processing transaction: reverted with reason string 'Ownable: caller is not the owner'")
	}
	tr := newTransactor(t, backend)

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	_, err := tr.Send(t.Context(), &to, nil, nil)
	require.ErrorIs(t, err, chain.ErrTransactionReverted)

	reason, ok := chain.RevertReason(err)
	require.True(t, ok)
	assert.Equal(t, "Ownable: caller is not the owner", reason)
	assert.Empty(t, backend.Sent())
}

func TestTransactorFailedReceipt(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	backend.ReceiptFn = func(_ *types.Transaction, _ uint64) *types.Receipt {
		return &types.Receipt{Status: types.ReceiptStatusFailed}
	}
	backend.CallFn = func(_ ethereum.CallMsg, block *big.Int) ([]byte, error) {
		if block == nil {
			return nil, nil
		}
		return nil, errors.New("execution reverted: Energy Vampires :: Team already minted")
	}
	tr := newTransactor(t, backend)

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	receipt, err := tr.Send(t.Context(), &to, nil, nil)
	require.Error(t, err)
	require.NotNil(t, receipt)

	reason, ok := chain.RevertReason(err)
	require.True(t, ok)
	assert.Equal(t, "Energy Vampires :: Team already minted", reason)

	// without a reason the sentinel is still reported
	backend.CallFn = nil
	_, err = tr.Send(t.Context(), &to, nil, nil)
	require.ErrorIs(t, err, chain.ErrTransactionReverted)
	_, ok = chain.RevertReason(err)
	assert.False(t, ok)
}
