package contract_test

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/chain/chaintest"
	"github/chapool/nft-mint/internal/mint/contract"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	ownerAddress    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	minterAddress   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func loadBinding(t *testing.T) *contract.Binding {
	t.Helper()

	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	return contract.NewBinding(contractAddress, parsed)
}

func TestPrices(t *testing.T) {
	assert.Equal(t, "99000000000000000", contract.PublicMintPrice.String())
	assert.Equal(t, "79900000000000000", contract.WhitelistMintPrice.String())
	assert.Equal(t, "990000000000000000", contract.Cost(contract.PublicMintPrice, 10).String())
	assert.Equal(t, 3, contract.MaxWhitelistMint)
}

func TestLoadABI(t *testing.T) {
	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	for _, method := range []string{"owner", "mint", "whitelistMint", "teamMint", "togglePause", "toggleWhiteListSale", "togglePublicSale", "toggleReveal"} {
		assert.Contains(t, parsed.Methods, method)
	}
	for _, event := range []string{contract.EventMinted, contract.EventPauseToggled, contract.EventWhiteListSaleToggled, contract.EventPublicSaleToggled, contract.EventRevealToggled} {
		assert.Contains(t, parsed.Events, event)
	}

	dir := t.TempDir()
	artifact := filepath.Join(dir, "artifact.json")
	require.NoError(t, os.WriteFile(artifact, []byte(`{"contractName":"X","abi":[{"type":"event","name":"Minted","anonymous":false,"inputs":[{"name":"to","type":"address","indexed":false},{"name":"amount","type":"uint256","indexed":false}]}]}`), 0o600))

	parsed, err = contract.LoadABI(artifact)
	require.NoError(t, err)
	assert.Contains(t, parsed.Events, contract.EventMinted)

	noMinted := filepath.Join(dir, "plain.json")
	require.NoError(t, os.WriteFile(noMinted, []byte(`[{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}]`), 0o600))
	_, err = contract.LoadABI(noMinted)
	require.Error(t, err)

	_, err = contract.LoadABI(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func mintedLog(t *testing.T, b *contract.Binding, minter common.Address, quantity int64) types.Log {
	t.Helper()

	data, err := b.ABI.Events[contract.EventMinted].Inputs.NonIndexed().Pack(big.NewInt(quantity))
	require.NoError(t, err)

	return types.Log{
		Address:     b.Address,
		Topics:      []common.Hash{b.MintedTopic(), common.BytesToHash(minter.Bytes())},
		Data:        data,
		BlockNumber: 12,
		TxHash:      common.HexToHash("0xaa"),
		Index:       3,
		BlockHash:   common.HexToHash("0xbb"),
	}
}

func TestParseMinted(t *testing.T) {
	b := loadBinding(t)

	ev, err := b.ParseMinted(mintedLog(t, b, minterAddress, 2))
	require.NoError(t, err)
	assert.Equal(t, minterAddress, ev.Minter)
	assert.Equal(t, int64(2), ev.Quantity.Int64())
	assert.Equal(t, uint64(12), ev.BlockNumber)
	assert.Equal(t, uint(3), ev.LogIndex)
	assert.Equal(t, common.HexToHash("0xaa"), ev.TxHash)

	other := mintedLog(t, b, minterAddress, 2)
	other.Topics[0] = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	_, err = b.ParseMinted(other)
	require.ErrorIs(t, err, contract.ErrUnexpectedLog)
}

func TestParseMintedNonIndexedABI(t *testing.T) {
	parsed, err := contract.ParseABI([]byte(`[{"type":"event","name":"Minted","anonymous":false,"inputs":[{"name":"to","type":"address","indexed":false},{"name":"amount","type":"uint256","indexed":false}]}]`))
	require.NoError(t, err)
	b := contract.NewBinding(contractAddress, parsed)

	data, err := parsed.Events[contract.EventMinted].Inputs.Pack(minterAddress, big.NewInt(7))
	require.NoError(t, err)

	ev, err := b.ParseMinted(types.Log{Address: contractAddress, Topics: []common.Hash{b.MintedTopic()}, Data: data})
	require.NoError(t, err)
	assert.Equal(t, minterAddress, ev.Minter)
	assert.Equal(t, int64(7), ev.Quantity.Int64())
}

func TestMintedFilterQuery(t *testing.T) {
	b := loadBinding(t)

	q := b.MintedFilterQuery(5, nil)
	assert.Equal(t, big.NewInt(5), q.FromBlock)
	assert.Nil(t, q.ToBlock)
	assert.Equal(t, []common.Address{contractAddress}, q.Addresses)
	assert.Equal(t, [][]common.Hash{{crypto.Keccak256Hash([]byte("Minted(address,uint256)"))}}, q.Topics)

	to := uint64(9)
	q = b.MintedFilterQuery(5, &to)
	assert.Equal(t, big.NewInt(9), q.ToBlock)
}

// newClient answers view calls from state and emits toggle events for toggle transactions.
func newClient(t *testing.T, state map[string]any) (*contract.Client, *chaintest.Backend) {
	t.Helper()

	b := loadBinding(t)
	backend := chaintest.NewBackend(31337)

	methodBySelector := map[string]abi.Method{}
	for _, m := range b.ABI.Methods {
		methodBySelector[string(m.ID)] = m
	}

	backend.CallFn = func(msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		m := methodBySelector[string(msg.Data[:4])]
		v, ok := state[m.Name]
		if !ok {
			return nil, errors.Errorf("execution reverted: no state for %s", m.Name)
		}
		return m.Outputs.Pack(v)
	}

	toggles := map[string]string{
		"togglePause":         contract.EventPauseToggled,
		"toggleWhiteListSale": contract.EventWhiteListSaleToggled,
		"togglePublicSale":    contract.EventPublicSaleToggled,
		"toggleReveal":        contract.EventRevealToggled,
	}
	stateKey := map[string]string{
		"togglePause":         "pause",
		"toggleWhiteListSale": "whiteListSale",
		"togglePublicSale":    "publicSale",
		"toggleReveal":        "isRevealed",
	}

	backend.ReceiptFn = func(tx *types.Transaction, _ uint64) *types.Receipt {
		receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
		m := methodBySelector[string(tx.Data()[:4])]
		if event, ok := toggles[m.Name]; ok {
			next := !state[stateKey[m.Name]].(bool)
			state[stateKey[m.Name]] = next
			data, err := b.ABI.Events[event].Inputs.Pack(next)
			require.NoError(t, err)
			receipt.Logs = []*types.Log{{Address: contractAddress, Topics: []common.Hash{b.ABI.Events[event].ID}, Data: data}}
		}
		return receipt
	}

	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	tr, err := chain.NewTransactor(t.Context(), backend, key)
	require.NoError(t, err)
	tr.PollInterval = time.Millisecond

	return contract.NewClient(b, tr), backend
}

func TestClientStatusAndToggles(t *testing.T) {
	state := map[string]any{
		"owner":         ownerAddress,
		"pause":         false,
		"whiteListSale": false,
		"publicSale":    false,
		"isRevealed":    false,
		"totalSupply":   big.NewInt(0),
	}
	client, _ := newClient(t, state)
	ctx := t.Context()

	status, err := client.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, ownerAddress, status.Owner)
	assert.False(t, status.Paused)
	assert.Equal(t, int64(0), status.TotalSupply.Int64())

	paused, err := client.TogglePause(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	paused, err = client.Paused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	paused, err = client.TogglePause(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	for _, toggle := range []func() (bool, error){
		func() (bool, error) { return client.ToggleWhiteListSale(ctx) },
		func() (bool, error) { return client.TogglePublicSale(ctx) },
		func() (bool, error) { return client.ToggleReveal(ctx) },
	} {
		v, err := toggle()
		require.NoError(t, err)
		assert.True(t, v)
	}

	revealed, err := client.IsRevealed(ctx)
	require.NoError(t, err)
	assert.True(t, revealed)
}

func TestClientMintEncodesValue(t *testing.T) {
	client, backend := newClient(t, map[string]any{})
	ctx := t.Context()

	_, err := client.Mint(ctx, 10)
	require.NoError(t, err)

	hash := common.HexToHash("0x01")
	sig := bytes.Repeat([]byte{0x02}, 65)
	_, err = client.WhitelistMint(ctx, 1, hash, sig)
	require.NoError(t, err)

	sent := backend.Sent()
	require.Len(t, sent, 2)

	assert.Equal(t, "990000000000000000", sent[0].Value().String())
	assert.Equal(t, contractAddress, *sent[0].To())

	assert.Equal(t, contract.WhitelistMintPrice.String(), sent[1].Value().String())
	args, err := client.ABI.Methods["whitelistMint"].Inputs.Unpack(sent[1].Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, int64(1), args[0].(*big.Int).Int64())
	assert.Equal(t, [32]byte(hash), args[1])
	assert.Equal(t, sig, args[2])
}

func TestToggleWithoutEvent(t *testing.T) {
	client, backend := newClient(t, map[string]any{})
	backend.ReceiptFn = nil

	_, err := client.TogglePause(t.Context())
	require.ErrorIs(t, err, contract.ErrEventNotFound)
}
