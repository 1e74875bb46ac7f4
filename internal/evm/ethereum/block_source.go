package ethereum

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

// BlockSource fetches blocks of one chain for ordering checks.
type BlockSource struct {
	rpc   RPCClient
	chain model.Chain
}

// NewBlockSource creates a BlockSource reading from rpc.
func NewBlockSource(rpc RPCClient, chain model.Chain) *BlockSource {
	return &BlockSource{
		rpc:   rpc,
		chain: chain,
	}
}

// LatestHeight returns the latest block number from the node.
func (s *BlockSource) LatestHeight(ctx context.Context) (uint64, error) {
	height, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height with all of its transactions.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (model.Block, error) {
	if err := ctx.Err(); err != nil {
		return model.Block{}, err
	}
	raw, err := s.rpc.RawBlockByNumber(ctx, height)
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %d: %w", height, err)
	}
	block, err := DecodeBlock(raw, s.chain)
	if err != nil {
		return model.Block{}, err
	}
	if block.Number != height {
		return model.Block{}, fmt.Errorf("node returned block %d for height %d", block.Number, height)
	}
	return block, nil
}
