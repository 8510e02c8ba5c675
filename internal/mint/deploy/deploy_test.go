package deploy_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/chain/chaintest"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/mint/deploy"
)

func newService(t *testing.T, backend *chaintest.Backend) (*deploy.Service, *chain.Transactor) {
	t.Helper()

	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)

	tr, err := chain.NewTransactor(t.Context(), backend, key)
	require.NoError(t, err)
	tr.PollInterval = time.Millisecond

	return deploy.NewService(tr), tr
}

func TestParseBytecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"hex with prefix", "0x6080604052\n"},
		{"hex without prefix", "6080604052"},
		{"hex with whitespace", "  60 80\n60 40 52  "},
		{"hardhat artifact", `{"contractName":"EnergyVampires","bytecode":"0x6080604052","deployedBytecode":"0x00"}`},
		{"solc artifact", `{"bytecode":{"object":"6080604052"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := deploy.ParseBytecode([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, code)
		})
	}

	_, err := deploy.ParseBytecode([]byte(""))
	require.ErrorIs(t, err, deploy.ErrEmptyBytecode)

	_, err = deploy.ParseBytecode([]byte("0x"))
	require.ErrorIs(t, err, deploy.ErrEmptyBytecode)

	_, err = deploy.ParseBytecode([]byte("0xzz"))
	require.Error(t, err)

	_, err = deploy.ParseBytecode([]byte(`{"abi":[]}`))
	require.Error(t, err)
}

func TestLoadBytecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EnergyVampires.bin")
	require.NoError(t, os.WriteFile(path, []byte("0x6080604052"), 0o600))

	code, err := deploy.LoadBytecode(path)
	require.NoError(t, err)
	assert.Len(t, code, 5)

	_, err = deploy.LoadBytecode(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestDeploy(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	svc, tr := newService(t, backend)

	res, err := svc.Deploy(t.Context(), []byte{0x60, 0x80}, nil)
	require.NoError(t, err)

	assert.Equal(t, chaintest.ContractAddress(tr.From(), 0), res.Address)
	assert.Equal(t, uint64(1), res.BlockNumber)

	sent := backend.Sent()
	require.Len(t, sent, 1)
	assert.Nil(t, sent[0].To())
	assert.Equal(t, []byte{0x60, 0x80}, sent[0].Data())
	assert.Equal(t, res.TxHash, sent[0].Hash())
}

func TestDeployWithConstructorABI(t *testing.T) {
	backend := chaintest.NewBackend(31337)
	svc, _ := newService(t, backend)

	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	_, err = svc.Deploy(t.Context(), []byte{0x60, 0x80}, &parsed)
	require.NoError(t, err)

	_, err = svc.Deploy(t.Context(), []byte{0x60, 0x80}, &parsed, "unexpected")
	require.Error(t, err)

	_, err = svc.Deploy(t.Context(), []byte{0x60, 0x80}, nil, "unexpected")
	require.Error(t, err)
}

func TestDeployFailure(t *testing.T) {
	_, err := deploy.NewService(nil).Deploy(t.Context(), nil, nil)
	require.ErrorIs(t, err, deploy.ErrEmptyBytecode)

	backend := chaintest.NewBackend(31337)
	backend.EstimateGasFn = func(_ ethereum.CallMsg) (uint64, error) {
		return 0, errors.New("execution reverted: constructor failed")
	}
	svc, _ := newService(t, backend)

	_, err = svc.Deploy(t.Context(), []byte{0x60, 0x80}, nil)
	require.ErrorIs(t, err, chain.ErrTransactionReverted)

	backend = chaintest.NewBackend(31337)
	backend.ReceiptFn = func(_ *types.Transaction, _ uint64) *types.Receipt {
		return &types.Receipt{Status: types.ReceiptStatusFailed}
	}
	svc, _ = newService(t, backend)

	_, err = svc.Deploy(t.Context(), []byte{0x60, 0x80}, nil)
	require.ErrorIs(t, err, chain.ErrTransactionReverted)
}
