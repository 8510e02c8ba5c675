//go:build wireinject

package api

import (
	"database/sql"
	"testing"

	"github.com/google/wire"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/metrics"
	"github/chapool/nft-mint/internal/mint/eventsync"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	NewKeystore,
	NewAllowlist,
	NewSigner,
	metrics.New,
	mintStoreSet,
)

var mintStoreSet = wire.NewSet(
	NewMintStore,
	wire.Bind(new(eventsync.Store), new(*eventsync.PostgresStore)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewDB, NoTest)
	return new(Server), nil
}

// InitNewServerWithDB returns a new Server instance with the given DB instance.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithDB(
	_ config.Server,
	_ *sql.DB,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
