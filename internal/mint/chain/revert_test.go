package chain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
)

type dataError struct {
	data string
}

func (e dataError) Error() string          { return "execution reverted" }
func (e dataError) ErrorCode() int         { return 3 }
func (e dataError) ErrorData() interface{} { return e.data }

func revertData(t *testing.T, reason string) string {
	t.Helper()

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)

	// Error(string) selector
	return hexutil.Encode(append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...))
}

func TestDecodeRevert(t *testing.T) {
	assert.NoError(t, chain.DecodeRevert(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, chain.DecodeRevert(plain))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "revert data",
			err:  dataError{data: revertData(t, "Energy Vampires :: Already minted 3 times!")},
			want: "Energy Vampires :: Already minted 3 times!",
		},
		{
			name: "hardhat message",
			err:  errors.New("VM Exception while processing transaction: reverted with reason string 'Energy Vampires :: Address is not allowlisted'"),
			want: "Energy Vampires :: Address is not allowlisted",
		},
		{
			name: "geth message",
			err:  errors.Wrap(errors.New("execution reverted: Ownable: caller is not the owner"), "eth_estimateGas failed"),
			want: "Ownable: caller is not the owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chain.DecodeRevert(tt.err)
			require.ErrorIs(t, err, chain.ErrTransactionReverted)

			reason, ok := chain.RevertReason(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, reason)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
