package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidMnemonic   = errors.New("invalid mnemonic")
	ErrInvalidSignature  = errors.New("invalid signature")
)

// AllowlistSignature is the proof handed to a minter for whitelistMint.
type AllowlistSignature struct {
	Address     string
	MessageHash common.Hash
	Signature   []byte // 65 bytes r||s||v, v in {27, 28}
}

// Service signs allowlist proofs with a single key held in memory.
type Service interface {
	// Address returns the address of the signing key.
	Address() common.Address

	// MessageHash returns keccak256 of the lowercase address string.
	MessageHash(address string) common.Hash

	// SignAllowlist signs MessageHash(address) as an EIP-191 personal message.
	SignAllowlist(ctx context.Context, address string) (*AllowlistSignature, error)
}
