package signer

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/util"
)

type service struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewService creates a signer around key. The key never leaves the process.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(key *ecdsa.PrivateKey) (Service, error) {
	if key == nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "nil key")
	}

	return &service{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *service) Address() common.Address {
	return s.address
}

func (s *service) MessageHash(address string) common.Hash {
	return MessageHash(address)
}

func (s *service) SignAllowlist(ctx context.Context, address string) (*AllowlistSignature, error) {
	hash := MessageHash(address)

	sig, err := SignPersonal(s.key, hash.Bytes())
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("address", address).Msg("Failed to sign allowlist message")
		return nil, err
	}

	return &AllowlistSignature{
		Address:     strings.ToLower(address),
		MessageHash: hash,
		Signature:   sig,
	}, nil
}

// MessageHash is keccak256 over the UTF-8 bytes of the lowercase address string.
func MessageHash(address string) common.Hash {
	return crypto.Keccak256Hash([]byte(strings.ToLower(address)))
}

// SignPersonal signs msg with the "\x19Ethereum Signed Message:\n" prefix and returns
// r||s||v with v in {27, 28}, the form ecrecover in solidity expects.
func SignPersonal(key *ecdsa.PrivateKey, msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign message")
	}

	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}

// RecoverSigner returns the address that produced sig over the personal message hash.
func RecoverSigner(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature, "expected %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), normalized)
	if err != nil {
		return common.Address{}, errors.Wrap(ErrInvalidSignature, err.Error())
	}

	return crypto.PubkeyToAddress(*pub), nil
}
