package contract_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/mint/deploy"
	"github/chapool/nft-mint/internal/mint/signer"
)

// Default hardhat accounts. The contract verifies allowlist signatures against account #0.
const (
	ownerKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	minterKeyHex = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	otherKeyHex  = "5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
)

type accounts struct {
	owner  *contract.Client
	minter *contract.Client
	other  *contract.Client
}

// deployFresh deploys a new contract and returns clients for the owner and two other accounts.
// The test is skipped unless a node and the compiled bytecode are available.
func deployFresh(t *testing.T) (context.Context, accounts) {
	t.Helper()

	rpcURL := os.Getenv("MINT_TEST_RPC_URL")
	bytecodeFile := os.Getenv("MINT_TEST_BYTECODE_FILE")
	if rpcURL == "" || bytecodeFile == "" {
		t.Skip("MINT_TEST_RPC_URL and MINT_TEST_BYTECODE_FILE are required for contract integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	client, err := chain.NewRPCClient(ctx, []string{rpcURL})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	transactor := func(keyHex string) *chain.Transactor {
		key, err := signer.ParsePrivateKey(keyHex)
		require.NoError(t, err)

		tr, err := chain.NewTransactor(ctx, client, key)
		require.NoError(t, err)
		tr.PollInterval = 100 * time.Millisecond

		return tr
	}

	ownerTr := transactor(ownerKeyHex)

	bytecode, err := deploy.LoadBytecode(bytecodeFile)
	require.NoError(t, err)

	parsed, err := contract.LoadABI("")
	require.NoError(t, err)

	res, err := deploy.NewService(ownerTr).Deploy(ctx, bytecode, &parsed)
	require.NoError(t, err)

	owner := contract.NewClient(contract.NewBinding(res.Address, parsed), ownerTr)

	return ctx, accounts{
		owner:  owner,
		minter: owner.As(transactor(minterKeyHex)),
		other:  owner.As(transactor(otherKeyHex)),
	}
}

func requireRevert(t *testing.T, err error, reason string) {
	t.Helper()

	require.Error(t, err)
	got, ok := chain.RevertReason(err)
	require.True(t, ok, "expected a revert, got %v", err)
	assert.Contains(t, got, reason)
}

// allowlistProof signs the minter address the way the check-address endpoint does.
func allowlistProof(t *testing.T, keyHex string, address common.Address) (common.Hash, []byte) {
	t.Helper()

	key, err := signer.ParsePrivateKey(keyHex)
	require.NoError(t, err)

	svc, err := signer.NewService(key)
	require.NoError(t, err)

	sig, err := svc.SignAllowlist(context.Background(), address.Hex())
	require.NoError(t, err)

	return sig.MessageHash, sig.Signature
}

func TestIntegrationOwner(t *testing.T) {
	ctx, acc := deployFresh(t)

	owner, err := acc.owner.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, acc.owner.From(), owner)
}

func TestIntegrationPublicMintLimit(t *testing.T) {
	ctx, acc := deployFresh(t)

	open, err := acc.owner.TogglePublicSale(ctx)
	require.NoError(t, err)
	require.True(t, open)

	receipt, err := acc.minter.Mint(ctx, 10)
	require.NoError(t, err)

	var minted *contract.Minted
	for _, l := range receipt.Logs {
		if len(l.Topics) > 0 && l.Topics[0] == acc.minter.MintedTopic() {
			minted, err = acc.minter.ParseMinted(*l)
			require.NoError(t, err)
		}
	}
	require.NotNil(t, minted, "receipt has no Minted log")
	assert.Equal(t, acc.minter.From(), minted.Minter)
	assert.Equal(t, int64(10), minted.Quantity.Int64())

	_, err = acc.minter.Mint(ctx, 1)
	requireRevert(t, err, "Already minted 3 times!")
}

func TestIntegrationWhitelistMint(t *testing.T) {
	ctx, acc := deployFresh(t)

	open, err := acc.owner.ToggleWhiteListSale(ctx)
	require.NoError(t, err)
	require.True(t, open)

	hash, sig := allowlistProof(t, ownerKeyHex, acc.minter.From())

	_, err = acc.minter.WhitelistMint(ctx, 1, hash, sig)
	require.NoError(t, err)

	supply, err := acc.owner.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), supply.Int64())
}

func TestIntegrationWhitelistMintWrongSigner(t *testing.T) {
	ctx, acc := deployFresh(t)

	_, err := acc.owner.ToggleWhiteListSale(ctx)
	require.NoError(t, err)

	// signed by the minter key instead of the allowlist signer
	hash, sig := allowlistProof(t, minterKeyHex, acc.other.From())

	_, err = acc.other.WhitelistMint(ctx, 1, hash, sig)
	requireRevert(t, err, "Address is not allowlisted")
}

func TestIntegrationWhitelistMintLimit(t *testing.T) {
	ctx, acc := deployFresh(t)

	_, err := acc.owner.ToggleWhiteListSale(ctx)
	require.NoError(t, err)

	hash, sig := allowlistProof(t, ownerKeyHex, acc.minter.From())

	_, err = acc.minter.WhitelistMintWithValue(ctx, contract.MaxWhitelistMint+1, hash, sig, contract.WhitelistMintPrice)
	requireRevert(t, err, "Cannot mint beyond whitelist max mint!")
}

func TestIntegrationTeamMint(t *testing.T) {
	ctx, acc := deployFresh(t)

	_, err := acc.minter.TeamMint(ctx)
	requireRevert(t, err, "Ownable: caller is not the owner")

	_, err = acc.owner.TeamMint(ctx)
	require.NoError(t, err)

	_, err = acc.owner.TeamMint(ctx)
	requireRevert(t, err, "Team already minted")
}

func TestIntegrationToggles(t *testing.T) {
	ctx, acc := deployFresh(t)

	toggles := []struct {
		name   string
		toggle func(c *contract.Client, ctx context.Context) (bool, error)
		read   func(c *contract.Client, ctx context.Context) (bool, error)
	}{
		{"pause", (*contract.Client).TogglePause, (*contract.Client).Paused},
		{"whitelist sale", (*contract.Client).ToggleWhiteListSale, (*contract.Client).WhiteListSale},
		{"public sale", (*contract.Client).TogglePublicSale, (*contract.Client).PublicSale},
		{"reveal", (*contract.Client).ToggleReveal, (*contract.Client).IsRevealed},
	}

	for _, tt := range toggles {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.toggle(acc.other, ctx)
			requireRevert(t, err, "Ownable: caller is not the owner")

			for _, want := range []bool{true, false} {
				emitted, err := tt.toggle(acc.owner, ctx)
				require.NoError(t, err)
				assert.Equal(t, want, emitted)

				current, err := tt.read(acc.owner, ctx)
				require.NoError(t, err)
				assert.Equal(t, want, current)
			}
		})
	}
}

func TestIntegrationAllowlistProofMatchesContractHash(t *testing.T) {
	// the contract is handed keccak256 of the lowercase address string
	hash, _ := allowlistProof(t, ownerKeyHex, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.Equal(t, crypto.Keccak256Hash([]byte("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")), hash)
}
