package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"
)

// ObservedClient wraps a JSON-RPC connection with rate limiting and metrics.
type ObservedClient struct {
	rpc        *rpc.Client
	eth        *ethclient.Client
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// Dial connects to the node at rawURL. rps limits outgoing calls per second, 0 disables the limit.
func Dial(ctx context.Context, rawURL string, timeout time.Duration, rps int, rpcMetrics RPCMetrics) (*ObservedClient, error) {
	client, err := rpc.DialOptions(ctx, rawURL, rpc.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	return NewObservedClient(client, newLimiter(rps), rpcMetrics), nil
}

// NewObservedClient constructs an instrumented client over an established connection.
func NewObservedClient(client *rpc.Client, limiter ratelimit.Limiter, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		rpc:        client,
		eth:        ethclient.NewClient(client),
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

// Close closes the underlying connection.
func (c *ObservedClient) Close() {
	c.rpc.Close()
}

// ChainID returns the chain id reported by the node.
func (c *ObservedClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("chain_id", err, started)
	}()
	return c.eth.ChainID(ctx)
}

// BlockNumber returns the number of the most recent block.
func (c *ObservedClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("block_number", err, started)
	}()
	return c.eth.BlockNumber(ctx)
}

// RawBlockByNumber returns the undecoded block with full transaction objects.
// A block the node does not know yields ethereum.NotFound.
func (c *ObservedClient) RawBlockByNumber(ctx context.Context, number uint64) (raw json.RawMessage, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_by_number", err, started)
	}()
	if err = c.rpc.CallContext(ctx, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true); err != nil {
		return nil, err
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ethereum.NotFound
	}
	return raw, nil
}

// CallContract executes a read-only call against the given block, nil meaning latest.
func (c *ObservedClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("call", err, started)
	}()
	return c.eth.CallContract(ctx, msg, blockNumber)
}
