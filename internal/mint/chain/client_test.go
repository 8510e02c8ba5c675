package chain_test

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/mint/chain"
)

type ethAPI struct {
	block    uint64
	chainID  int64
	fail     bool
	requests atomic.Int32
}

func (api *ethAPI) BlockNumber() (hexutil.Uint64, error) {
	api.requests.Add(1)
	if api.fail {
		return 0, errors.New("node says no")
	}

	return hexutil.Uint64(api.block), nil
}

func (api *ethAPI) ChainId() *hexutil.Big { //nolint:revive,stylecheck // rpc method name
	return (*hexutil.Big)(big.NewInt(api.chainID))
}

func inProcClient(t *testing.T, api *ethAPI) *ethclient.Client {
	t.Helper()

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", api))
	t.Cleanup(server.Stop)

	return ethclient.NewClient(rpc.DialInProc(server))
}

func dialer(clients map[string]func() (*ethclient.Client, error)) chain.DialFunc {
	return func(_ context.Context, url string) (*ethclient.Client, error) {
		fn, ok := clients[url]
		if !ok {
			return nil, errors.New("unknown url")
		}
		return fn()
	}
}

func TestParseRPCURLs(t *testing.T) {
	assert.Equal(t, []string{"ws://a:8545", "wss://b/key"}, chain.ParseRPCURLs(" ws://a:8545, ,wss://b/key,"))
	assert.Empty(t, chain.ParseRPCURLs(""))
}

func TestNewRPCClientRequiresURL(t *testing.T) {
	_, err := chain.NewRPCClient(t.Context(), nil)
	require.Error(t, err)

	_, err = chain.NewRPCClientWithDialer(t.Context(), []string{"ws://down"}, dialer(nil))
	require.Error(t, err)
}

func TestRPCClientFailover(t *testing.T) {
	primary := &ethAPI{block: 10, chainID: 31337}
	secondary := &ethAPI{block: 11, chainID: 31337}

	primaryClient := inProcClient(t, primary)
	client, err := chain.NewRPCClientWithDialer(t.Context(), []string{"ws://primary", "ws://secondary"}, dialer(map[string]func() (*ethclient.Client, error){
		"ws://primary": func() (*ethclient.Client, error) { return primaryClient, nil },
		"ws://secondary": func() (*ethclient.Client, error) {
			return inProcClient(t, secondary), nil
		},
	}))
	require.NoError(t, err)
	defer client.Close()

	n, err := client.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)

	// a closed connection is a transport failure and moves on to the next endpoint
	primaryClient.Close()

	n, err = client.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(11), n)

	id, err := client.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(31337), id.Int64())
}

func TestRPCClientNodeErrorIsNotFailover(t *testing.T) {
	primary := &ethAPI{block: 10, fail: true}
	secondary := &ethAPI{block: 11}

	client, err := chain.NewRPCClientWithDialer(t.Context(), []string{"ws://primary", "ws://secondary"}, dialer(map[string]func() (*ethclient.Client, error){
		"ws://primary":   func() (*ethclient.Client, error) { return inProcClient(t, primary), nil },
		"ws://secondary": func() (*ethclient.Client, error) { return inProcClient(t, secondary), nil },
	}))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.BlockNumber(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node says no")
	assert.Equal(t, int32(1), primary.requests.Load())
	assert.Equal(t, int32(0), secondary.requests.Load())
}

func TestRPCClientRedialsLazily(t *testing.T) {
	api := &ethAPI{block: 5}
	var dials atomic.Int32

	client, err := chain.NewRPCClientWithDialer(t.Context(), []string{"ws://down", "ws://up"}, dialer(map[string]func() (*ethclient.Client, error){
		"ws://up": func() (*ethclient.Client, error) {
			dials.Add(1)
			return inProcClient(t, api), nil
		},
	}))
	require.NoError(t, err)
	defer client.Close()

	n, err := client.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
	assert.Equal(t, int32(1), dials.Load())
}
