package chain

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNoRPCAvailable = errors.New("all RPC clients are unavailable")

// DialFunc opens a client for url.
type DialFunc func(ctx context.Context, url string) (*ethclient.Client, error)

// RPCClient wraps several node endpoints. Calls go to the current endpoint and move on to
// the next one when the transport fails. Errors reported by the node itself (reverts,
// not found) are returned as-is without failover.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	dial    DialFunc
	mu      sync.Mutex
	current int
}

// ParseRPCURLs splits a comma separated list and drops empty entries.
func ParseRPCURLs(s string) []string {
	var urls []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	return urls
}

func NewRPCClient(ctx context.Context, urls []string) (*RPCClient, error) {
	return NewRPCClientWithDialer(ctx, urls, ethclient.DialContext)
}

// NewRPCClientWithDialer connects to every url it can. Endpoints failing now are retried on use,
// only a complete failure is an error.
func NewRPCClientWithDialer(ctx context.Context, urls []string, dial DialFunc) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	c := &RPCClient{
		urls:    urls,
		clients: make([]*ethclient.Client, len(urls)),
		dial:    dial,
	}

	connected := 0
	for i, url := range urls {
		client, err := dial(ctx, url)
		if err != nil {
			log.Warn().Str("url", redactURL(url)).Err(err).Msg("Failed to connect to RPC node, will retry on use")
			continue
		}
		c.clients[i] = client
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	for i, client := range c.clients {
		if client != nil {
			c.current = i
			break
		}
	}

	return c, nil
}

func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}

// do runs fn against the endpoints starting with the current one.
func (c *RPCClient) do(ctx context.Context, op string, fn func(*ethclient.Client) error) error {
	var lastErr error

	for attempt := range len(c.urls) {
		idx, client, err := c.client(ctx, attempt)
		if err != nil {
			lastErr = err
			continue
		}

		err = fn(client)
		if err == nil || !isTransportError(err) {
			return err
		}

		lastErr = err
		log.Warn().Str("url", redactURL(c.urls[idx])).Str("op", op).Err(err).Msg("RPC call failed, switching endpoint")
		c.drop(idx, client)

		if ctx.Err() != nil {
			break
		}
	}

	if lastErr == nil {
		lastErr = ErrNoRPCAvailable
	}

	return errors.Wrapf(lastErr, "%s failed on all RPC endpoints", op)
}

// client returns the endpoint at offset from current, dialing it when needed.
func (c *RPCClient) client(ctx context.Context, offset int) (int, *ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := (c.current + offset) % len(c.urls)
	if c.clients[idx] == nil {
		client, err := c.dial(ctx, c.urls[idx])
		if err != nil {
			return idx, nil, errors.Wrapf(err, "failed to dial %s", redactURL(c.urls[idx]))
		}
		c.clients[idx] = client
	}

	c.current = idx

	return idx, c.clients[idx], nil
}

func (c *RPCClient) drop(idx int, client *ethclient.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] == client {
		client.Close()
		c.clients[idx] = nil
	}
	if c.current == idx {
		c.current = (idx + 1) % len(c.urls)
	}
}

// isTransportError reports errors that say nothing about the request itself.
func isTransportError(err error) bool {
	if errors.Is(err, ethereum.NotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return false
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == 429
	}

	return true
}

// redactURL strips path and query, which commonly carry API keys.
func redactURL(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	host, _, _ := strings.Cut(rest, "/")

	return scheme + "://" + host
}

func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	var n uint64
	err := c.do(ctx, "eth_blockNumber", func(client *ethclient.Client) (err error) {
		n, err = client.BlockNumber(ctx)
		return err
	})

	return n, err
}

func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := c.do(ctx, "eth_chainId", func(client *ethclient.Client) (err error) {
		id, err = client.ChainID(ctx)
		return err
	})

	return id, err
}

func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var header *types.Header
	err := c.do(ctx, "eth_getBlockByNumber", func(client *ethclient.Client) (err error) {
		header, err = client.HeaderByNumber(ctx, number)
		return err
	})

	return header, err
}

func (c *RPCClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := c.do(ctx, "eth_getLogs", func(client *ethclient.Client) (err error) {
		logs, err = client.FilterLogs(ctx, query)
		return err
	})

	return logs, err
}

// SubscribeFilterLogs needs a ws:// or wss:// endpoint. The subscription stays bound to the
// endpoint that created it; callers resubscribe after it fails.
func (c *RPCClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	var sub ethereum.Subscription
	err := c.do(ctx, "eth_subscribe", func(client *ethclient.Client) (err error) {
		sub, err = client.SubscribeFilterLogs(ctx, query, ch)
		return err
	})

	return sub, err
}

func (c *RPCClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.do(ctx, "eth_getTransactionCount", func(client *ethclient.Client) (err error) {
		nonce, err = client.PendingNonceAt(ctx, account)
		return err
	})

	return nonce, err
}

func (c *RPCClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	var tip *big.Int
	err := c.do(ctx, "eth_maxPriorityFeePerGas", func(client *ethclient.Client) (err error) {
		tip, err = client.SuggestGasTipCap(ctx)
		return err
	})

	return tip, err
}

func (c *RPCClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	var gas uint64
	err := c.do(ctx, "eth_estimateGas", func(client *ethclient.Client) (err error) {
		gas, err = client.EstimateGas(ctx, msg)
		return err
	})

	return gas, err
}

func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.do(ctx, "eth_sendRawTransaction", func(client *ethclient.Client) error {
		return client.SendTransaction(ctx, tx)
	})
}

func (c *RPCClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.do(ctx, "eth_getTransactionReceipt", func(client *ethclient.Client) (err error) {
		receipt, err = client.TransactionReceipt(ctx, txHash)
		return err
	})

	return receipt, err
}

func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := c.do(ctx, "eth_call", func(client *ethclient.Client) (err error) {
		out, err = client.CallContract(ctx, msg, blockNumber)
		return err
	})

	return out, err
}

func (c *RPCClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	var code []byte
	err := c.do(ctx, "eth_getCode", func(client *ethclient.Client) (err error) {
		code, err = client.CodeAt(ctx, account, blockNumber)
		return err
	})

	return code, err
}
