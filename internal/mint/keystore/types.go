package keystore

import (
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/models"
)

var (
	ErrKeystoreNotFound = errors.New("keystore not found")
	ErrKeystoreExists   = errors.New("keystore already exists")
	ErrInvalidPassword  = errors.New("invalid password: MAC mismatch")
)

// Keystore is a stored signer_keystore row. KeystoreData holds the encrypted secret as KeystoreJSON.
type Keystore struct {
	*models.SignerKeystore
}

// KeystoreJSON is the web3 secret storage v3 layout. The plaintext is the
// secret string (hex private key or mnemonic), not raw key bytes.
//
//nolint:revive // KeystoreJSON is the standard name for Ethereum keystore JSON structure
type KeystoreJSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Address string `json:"address,omitempty"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

type ScryptParams struct {
	DKLen int
	N     int
	R     int
	P     int
}

// DefaultScryptParams returns the "standard" scrypt parameters used by geth keystores.
func DefaultScryptParams() ScryptParams {
	const (
		scryptDKLen = 32
		scryptN     = 262144 // 2^18
		scryptR     = 8
		scryptP     = 1
	)

	return ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}

// LightScryptParams trade strength for speed, for tests and local development only.
func LightScryptParams() ScryptParams {
	return ScryptParams{
		DKLen: 32,
		N:     4096,
		R:     8,
		P:     6,
	}
}
