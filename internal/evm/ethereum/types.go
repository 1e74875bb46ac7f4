// Package ethereum implements EVM chain access over JSON-RPC.
package ethereum

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RPCClient is the subset of node RPC the inspector relies on.
	RPCClient interface {
		ChainID(ctx context.Context) (*big.Int, error)
		BlockNumber(ctx context.Context) (uint64, error)
		RawBlockByNumber(ctx context.Context, number uint64) (json.RawMessage, error)
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	}

	// ContractCaller executes read-only contract calls.
	ContractCaller interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	}
)
