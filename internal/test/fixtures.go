package test

import (
	"context"
	"database/sql"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/mint/eventsync"
)

// Well-known dev chain values. The keys are the public hardhat/anvil default accounts.
const (
	ChainID         int64 = 31337
	ContractAddress       = "0x5fbdb2315678afecb367f032d93f642f64180aa3"

	SignerPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	SignerAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	// NotAllowlistedPrivateKey is hardhat account #6, outside AllowlistedAddresses.
	NotAllowlistedPrivateKey = "92db14e403b83dfe3df233f83dfa3a0d7096f21ca9b0d6d6b8d88b2b4ec1564e"
)

// AllowlistedAddresses are hardhat accounts #1 to #5.
var AllowlistedAddresses = []string{
	"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
	"0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc",
	"0x90f79bf6eb2c4f870365e785982e1f101e93b906",
	"0x15d34aaf54267db7d7c367839aaf71a00a2c6a65",
	"0x9965507d1a55bcc2695c58ba16fb37d819b0a4dc",
}

type FixtureMap struct {
	Checkpoint   *eventsync.Checkpoint
	MintEvents   []*eventsync.MintEvent
	FirstMinter  string
	SecondMinter string
}

// Fixtures returns the rows every test database starts with.
func Fixtures() FixtureMap {
	f := FixtureMap{
		FirstMinter:  AllowlistedAddresses[0],
		SecondMinter: AllowlistedAddresses[1],
	}

	scope := eventsync.Scope{ChainID: ChainID, Contract: ContractAddress}

	f.Checkpoint = &eventsync.Checkpoint{Scope: scope, LastBlock: 20}

	f.MintEvents = []*eventsync.MintEvent{
		{
			ChainID:     ChainID,
			Contract:    ContractAddress,
			TxHash:      "0x0000000000000000000000000000000000000000000000000000000000000a01",
			LogIndex:    0,
			BlockNumber: 5,
			BlockHash:   "0x0000000000000000000000000000000000000000000000000000000000000b05",
			Minter:      f.FirstMinter,
			Quantity:    big.NewInt(3),
		},
		{
			ChainID:     ChainID,
			Contract:    ContractAddress,
			TxHash:      "0x0000000000000000000000000000000000000000000000000000000000000a02",
			LogIndex:    1,
			BlockNumber: 9,
			BlockHash:   "0x0000000000000000000000000000000000000000000000000000000000000b09",
			Minter:      f.FirstMinter,
			Quantity:    big.NewInt(2),
		},
		{
			ChainID:     ChainID,
			Contract:    ContractAddress,
			TxHash:      "0x0000000000000000000000000000000000000000000000000000000000000a03",
			LogIndex:    0,
			BlockNumber: 12,
			BlockHash:   "0x0000000000000000000000000000000000000000000000000000000000000b0c",
			Minter:      f.SecondMinter,
			Quantity:    big.NewInt(10),
		},
	}

	return f
}

// InsertFixtures writes Fixtures through the same store the sync uses.
func InsertFixtures(ctx context.Context, t *testing.T, db *sql.DB) error {
	t.Helper()

	fix := Fixtures()

	store := eventsync.NewPostgresStore(db, fix.Checkpoint.Scope)
	if _, err := store.SaveBatch(ctx, fix.MintEvents, fix.Checkpoint.LastBlock); err != nil {
		return errors.Wrap(err, "failed to insert mint event fixtures")
	}

	return nil
}
