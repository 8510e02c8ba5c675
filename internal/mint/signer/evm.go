package signer

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// SignDynamicFeeTx signs an EIP-1559 transaction with the London signer of chainID.
//
//nolint:varnamelen // tx is a common abbreviation for transaction
func SignDynamicFeeTx(chainID *big.Int, key *ecdsa.PrivateKey, tx *types.Transaction) (*types.Transaction, error) {
	if tx.Type() != types.DynamicFeeTxType {
		return nil, errors.Errorf("unsupported transaction type %d", tx.Type())
	}

	signed, err := types.SignTx(tx, types.NewLondonSigner(chainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return signed, nil
}
