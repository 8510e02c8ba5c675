package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(cfg, "", "  ")
	require.NoError(t, err)
}

func TestServiceEnvHidesSecrets(t *testing.T) {
	t.Setenv("SIGNER_PRIVATE_KEY", "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	t.Setenv("OWNER_MNEMONIC", "test test test test test test test test test test test junk")
	t.Setenv("SIGNER_KEYSTORE_PASSWORD", "hunter2")

	cfg := config.DefaultServiceConfigFromEnv()
	require.NotEmpty(t, cfg.Signer.PrivateKey)

	b, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	assert.NotContains(t, string(b), "junk")
	assert.NotContains(t, string(b), "hunter2")
}

func TestSyncDefaults(t *testing.T) {
	t.Setenv("SYNC_BLOCK_BATCH_SIZE", "500")
	t.Setenv("CHAIN_RPC_URLS", "wss://a.example, https://b.example")

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, uint64(500), cfg.Sync.BlockBatchSize)
	assert.Equal(t, []string{"wss://a.example", "https://b.example"}, cfg.Chain.RPCURLs)
	assert.Equal(t, config.KeySourceEnv, cfg.Signer.Source)
	assert.Equal(t, config.DefaultDerivationPath, cfg.Owner.DerivationPath)
}
