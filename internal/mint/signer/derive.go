package signer

import (
	"crypto/ecdsa"
	"crypto/sha512"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/pbkdf2"
)

// SeedFromMnemonic converts a mnemonic to a BIP39 seed.
// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
func SeedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	const (
		pbkdf2Iterations = 2048
		pbkdf2KeyLength  = 64
	)

	words := strings.Fields(mnemonic)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, errors.Wrapf(ErrInvalidMnemonic, "expected 12-24 words, got %d", len(words))
	}

	normalized := strings.Join(words, " ")

	return pbkdf2.Key([]byte(normalized), []byte("mnemonic"+passphrase), pbkdf2Iterations, pbkdf2KeyLength, sha512.New), nil
}

// DeriveKey derives the secp256k1 key at a BIP44 path like m/44'/60'/0'/0/0.
func DeriveKey(seed []byte, path string) (*ecdsa.PrivateKey, error) {
	indices, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse derivation path %q", path)
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	privateKey, err := crypto.ToECDSA(common.LeftPadBytes(key.Key, 32))
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert derived key to ECDSA")
	}

	return privateKey, nil
}

// DeriveKeyFromMnemonic is SeedFromMnemonic followed by DeriveKey, with an empty passphrase.
func DeriveKeyFromMnemonic(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}

	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	return DeriveKey(seed, path)
}
