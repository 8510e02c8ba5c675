package chain

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type jsonRPCError struct{}

func (jsonRPCError) Error() string  { return "execution reverted" }
func (jsonRPCError) ErrorCode() int { return 3 }

func TestIsTransportError(t *testing.T) {
	assert.False(t, isTransportError(ethereum.NotFound))
	assert.False(t, isTransportError(errors.Wrap(context.Canceled, "x")))
	assert.False(t, isTransportError(jsonRPCError{}))
	assert.False(t, isTransportError(rpc.HTTPError{StatusCode: 400}))
	assert.True(t, isTransportError(rpc.HTTPError{StatusCode: 502}))
	assert.True(t, isTransportError(rpc.HTTPError{StatusCode: 429}))
	assert.True(t, isTransportError(errors.New("websocket: close 1006")))
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "wss://eth-sepolia.g.alchemy.com", redactURL("wss://eth-sepolia.g.alchemy.com/v2/secret"))
	assert.Equal(t, "ws://localhost:8545", redactURL("ws://localhost:8545"))
	assert.Equal(t, "not a url", redactURL("not a url"))
}
