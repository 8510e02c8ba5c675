package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/mint/signer"
	"github/chapool/nft-mint/internal/util"
)

const (
	defaultReceiptPollInterval = time.Second
	defaultReceiptTimeout      = 2 * time.Minute
	baseFeeMultiplier          = 2
	gasLimitHeadroomPercent    = 120
)

// Backend is the node surface needed to read contracts and send transactions.
// *RPCClient and *ethclient.Client both satisfy it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Transactor sends EIP-1559 transactions from a single key and waits for their receipts.
// Sends are serialized so nonces never collide.
type Transactor struct {
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int

	PollInterval   time.Duration
	ReceiptTimeout time.Duration

	mu sync.Mutex
}

func NewTransactor(ctx context.Context, backend Backend, key *ecdsa.PrivateKey) (*Transactor, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return &Transactor{
		backend:        backend,
		key:            key,
		from:           crypto.PubkeyToAddress(key.PublicKey),
		chainID:        chainID,
		PollInterval:   defaultReceiptPollInterval,
		ReceiptTimeout: defaultReceiptTimeout,
	}, nil
}

func (t *Transactor) From() common.Address {
	return t.from
}

func (t *Transactor) ChainID() *big.Int {
	return new(big.Int).Set(t.chainID)
}

func (t *Transactor) Backend() Backend {
	return t.backend
}

// Call executes a read-only call from the transactor's address at the latest block.
func (t *Transactor) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	out, err := t.backend.CallContract(ctx, ethereum.CallMsg{From: t.from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, DecodeRevert(err)
	}

	return out, nil
}

// Send signs and broadcasts a transaction and waits for its receipt. to == nil creates a contract.
// A revert during gas estimation or a failed receipt yields a *RevertError.
//
//nolint:varnamelen // tx is a common abbreviation for transaction
func (t *Transactor) Send(ctx context.Context, to *common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	log := util.LogFromContext(ctx)

	if value == nil {
		value = new(big.Int)
	}

	msg := ethereum.CallMsg{From: t.from, To: to, Value: value, Data: data}

	tx, err := t.sendLocked(ctx, msg)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("tx_hash", tx.Hash().Hex()).Uint64("nonce", tx.Nonce()).Msg("Transaction broadcasted")

	receipt, err := t.WaitForReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, errors.Wrapf(err, "failed while waiting for receipt of %s", tx.Hash().Hex())
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		// replay at the mined block to recover the reason
		_, callErr := t.backend.CallContract(ctx, msg, receipt.BlockNumber)
		if reason, ok := RevertReason(DecodeRevert(callErr)); ok {
			return receipt, &RevertError{Reason: reason}
		}
		return receipt, errors.Wrapf(ErrTransactionReverted, "tx %s", tx.Hash().Hex())
	}

	return receipt, nil
}

func (t *Transactor) sendLocked(ctx context.Context, msg ethereum.CallMsg) (*types.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gas, err := t.backend.EstimateGas(ctx, msg)
	if err != nil {
		return nil, DecodeRevert(err)
	}
	gas = gas * gasLimitHeadroomPercent / 100

	nonce, err := t.backend.PendingNonceAt(ctx, t.from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending nonce")
	}

	tipCap, err := t.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	header, err := t.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	baseFee := header.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}

	maxFee := new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(baseFeeMultiplier)), tipCap)

	//nolint:varnamelen
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   t.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: maxFee,
		Gas:       gas,
		To:        msg.To,
		Value:     msg.Value,
		Data:      msg.Data,
	})

	signed, err := signer.SignDynamicFeeTx(t.chainID, t.key, tx)
	if err != nil {
		return nil, err
	}

	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		return nil, errors.Wrap(DecodeRevert(err), "failed to send transaction")
	}

	return signed, nil
}

// WaitForReceipt polls until the receipt of txHash is available or ReceiptTimeout passes.
func (t *Transactor) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	localCtx, cancel := context.WithTimeout(ctx, t.ReceiptTimeout)
	defer cancel()

	ticker := time.NewTicker(t.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := t.backend.TransactionReceipt(localCtx, txHash)
		if err == nil {
			return receipt, nil
		}

		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-localCtx.Done():
			return nil, errors.Wrap(localCtx.Err(), "context canceled while waiting for receipt")
		case <-ticker.C:
		}
	}
}
