package test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/api/router"
	"github/chapool/nft-mint/internal/config"
)

// DefaultTestConfig is the env based config with a fixed signer key, the hardhat allowlist and
// the fixture contract, so tests do not depend on local secrets.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Chain.ChainID = ChainID
	cfg.Contract.Address = ContractAddress

	cfg.Signer = config.Key{
		Source:         config.KeySourceEnv,
		PrivateKey:     SignerPrivateKey,
		DerivationPath: config.DefaultDerivationPath,
	}

	cfg.Allowlist = config.Allowlist{
		Source:    config.AllowlistSourceEnv,
		Addresses: AllowlistedAddresses,
	}

	cfg.Sync.Enabled = false
	cfg.Kafka.Brokers = nil

	return cfg
}

// WithTestServer returns a fully configured server (using DefaultTestConfig) backed by an
// isolated test database.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration
// using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	ctx := context.Background()

	WithTestDatabase(t, func(db *sql.DB) {
		t.Helper()

		execClosureNewTestServer(ctx, t, config, db, closure)
	})
}

func execClosureNewTestServer(ctx context.Context, t *testing.T, config config.Server, db *sql.DB, closure func(s *api.Server)) {
	t.Helper()

	// You may use port 0 to indicate you're not specifying an exact port but you want a free,
	// available port selected by the system
	config.Echo.ListenAddress = ":0"
	config.Contract.Address = strings.ToLower(config.Contract.Address)

	s, err := api.InitNewServerWithDB(config, db, t)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	closure(s)

	// echo is managed and should close automatically after running the test
	if err := s.Echo.Shutdown(ctx); err != nil {
		t.Fatalf("Failed to shutdown server: %v", err)
	}
}
