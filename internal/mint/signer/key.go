package signer

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/util"
)

// ParsePrivateKey parses a hex private key with or without 0x prefix.
func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "empty key")
	}

	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	return key, nil
}

// LoadKey resolves the private key described by cfg. ks is only used by the keystore source
// and may be nil otherwise.
func LoadKey(ctx context.Context, cfg config.Key, ks keystore.Service) (*ecdsa.PrivateKey, error) {
	switch cfg.Source {
	case config.KeySourceEnv:
		return ParsePrivateKey(cfg.PrivateKey)
	case config.KeySourceMnemonic:
		return DeriveKeyFromMnemonic(cfg.Mnemonic, cfg.DerivationPath)
	case config.KeySourceKeystore:
		if ks == nil {
			return nil, errors.New("keystore key source requires a database")
		}

		stored, err := ks.Get(ctx, cfg.KeystoreName)
		if err != nil {
			return nil, err
		}

		secret, err := ks.Decrypt(ctx, stored, cfg.KeystorePassword)
		if err != nil {
			return nil, err
		}

		util.LogFromContext(ctx).Debug().Str("name", cfg.KeystoreName).Msg("Unlocked keystore")

		return KeyFromSecret(secret, cfg.DerivationPath)
	default:
		return nil, errors.Errorf("unknown key source %q", cfg.Source)
	}
}

// KeyFromSecret accepts a stored secret, either a hex private key or a mnemonic.
func KeyFromSecret(secret string, derivationPath string) (*ecdsa.PrivateKey, error) {
	if len(strings.Fields(secret)) > 1 {
		return DeriveKeyFromMnemonic(secret, derivationPath)
	}

	return ParsePrivateKey(secret)
}
