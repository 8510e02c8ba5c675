package api

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/allowlist"
	"github/chapool/nft-mint/internal/mint/eventsync"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/mint/signer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

const loadTimeout = 30 * time.Second

// NewClock returns a mock clock when running inside a test, the real one otherwise.
func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if !useMock {
		clock = time2.DefaultClock
	} else {
		clock = time2.NewMockClock(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	}

	return clock
}

func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

func NoTest() []*testing.T {
	return nil
}

func NewKeystore(db *sql.DB) keystore.Service { //nolint:ireturn
	return keystore.NewService(db)
}

func NewAllowlist(cfg config.Server, db *sql.DB) (*allowlist.Service, error) {
	var exec boil.ContextExecutor
	if db != nil {
		exec = db
	}

	source, err := allowlist.SourceFromConfig(cfg.Allowlist, exec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	list, err := allowlist.New(ctx, source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load allowlist from %s source", cfg.Allowlist.Source)
	}

	log.Info().Str("source", cfg.Allowlist.Source).Int("addresses", list.Len()).Msg("Allowlist loaded")

	return list, nil
}

func NewSigner(cfg config.Server, ks keystore.Service) (signer.Service, error) { //nolint:ireturn
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	key, err := signer.LoadKey(ctx, cfg.Signer, ks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signer key")
	}

	svc, err := signer.NewService(key)
	if err != nil {
		return nil, err
	}

	log.Info().Str("address", svc.Address().Hex()).Str("source", cfg.Signer.Source).Msg("Allowlist signer ready")

	return svc, nil
}

func NewMintStore(cfg config.Server, db *sql.DB) *eventsync.PostgresStore {
	return eventsync.NewPostgresStore(db, eventsync.Scope{
		ChainID:  cfg.Chain.ChainID,
		Contract: strings.ToLower(cfg.Contract.Address),
	})
}
