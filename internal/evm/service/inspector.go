package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/ordering"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/pkg/workerpool"
	"go.uber.org/zap"
)

// LondonBlock is the Ethereum mainnet block that activated the fee market.
const LondonBlock uint64 = 12_965_000

var (
	// ErrBelowReference is returned when the chain head has not passed the reference block.
	ErrBelowReference = errors.New("chain head has not passed the reference block")
	// ErrHeightAboveHead is returned for a requested height the chain has not produced yet.
	ErrHeightAboveHead = errors.New("requested height is above chain head")
)

// InspectorConfig controls which blocks are checked and which contract values are read.
type InspectorConfig struct {
	// Heights, when set, replaces random sampling.
	Heights        []uint64
	Samples        int
	ReferenceBlock uint64
	Workers        int
	Policy         ordering.Policy
	Admin          common.Address
	Owner          common.Address
}

// BlockResult is the ordering outcome of one block.
type BlockResult struct {
	Height         uint64
	Hash           common.Hash
	BaseFee        *big.Int
	TxCount        int
	Ordered        bool
	ViolationIndex int
}

// Report is the outcome of a full inspection run.
type Report struct {
	Latest   uint64
	Blocks   []BlockResult
	Contract model.ContractValues
}

// InspectorService checks block ordering on one chain and reads contract values on another.
type InspectorService struct {
	logger   *zap.Logger
	cfg      InspectorConfig
	source   BlockSource
	contract ContractReader
	sampler  *Sampler
	metrics  InspectorMetrics
}

// NewInspectorService builds an InspectorService with the given dependencies.
func NewInspectorService(
	cfg InspectorConfig,
	source BlockSource,
	contract ContractReader,
	sampler *Sampler,
	metrics InspectorMetrics,
	logger *zap.Logger,
) (*InspectorService, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if contract == nil {
		return nil, errors.New("contract reader is required")
	}
	if metrics == nil {
		return nil, errors.New("inspector metrics is required")
	}
	if sampler == nil && len(cfg.Heights) == 0 {
		return nil, errors.New("sampler is required without explicit heights")
	}
	if cfg.Policy == "" {
		cfg.Policy = ordering.PolicyGasPrice
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &InspectorService{
		logger:   logger,
		cfg:      cfg,
		source:   source,
		contract: contract,
		sampler:  sampler,
		metrics:  metrics,
	}, nil
}

// Run performs one inspection. Any remote failure aborts the run.
func (s *InspectorService) Run(ctx context.Context) (Report, error) {
	latest, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveLatestHeight(err, latest)
	if err != nil {
		return Report{}, fmt.Errorf("latest height: %w", err)
	}
	if latest <= s.cfg.ReferenceBlock {
		return Report{}, fmt.Errorf("%w: head %d, reference %d", ErrBelowReference, latest, s.cfg.ReferenceBlock)
	}
	s.logger.Info("chain head", zap.Uint64("latest", latest))

	heights, err := s.heights(latest)
	if err != nil {
		return Report{}, err
	}

	blocks, err := workerpool.Map(ctx, s.cfg.Workers, heights, s.checkHeight)
	if err != nil {
		return Report{}, err
	}

	values, err := s.contract.Read(ctx, s.cfg.Admin, s.cfg.Owner)
	s.metrics.ObserveContractRead(err)
	if err != nil {
		return Report{}, fmt.Errorf("read contract values: %w", err)
	}

	return Report{
		Latest:   latest,
		Blocks:   blocks,
		Contract: values,
	}, nil
}

func (s *InspectorService) heights(latest uint64) ([]uint64, error) {
	if len(s.cfg.Heights) == 0 {
		return s.sampler.Sample(latest, s.cfg.Samples), nil
	}
	for _, h := range s.cfg.Heights {
		if h > latest {
			return nil, fmt.Errorf("%w: height %d, head %d", ErrHeightAboveHead, h, latest)
		}
	}
	return s.cfg.Heights, nil
}

func (s *InspectorService) checkHeight(ctx context.Context, height uint64) (res BlockResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlock(err, res.Ordered, res.TxCount, started)
	}()

	block, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		s.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return BlockResult{}, fmt.Errorf("fetch block height %d: %w", height, err)
	}

	check := ordering.Check(block, s.cfg.Policy)
	res = BlockResult{
		Height:         block.Number,
		Hash:           block.Hash,
		BaseFee:        block.BaseFee,
		TxCount:        len(block.Transactions),
		Ordered:        check.Ordered,
		ViolationIndex: check.ViolationIndex,
	}
	s.logger.Debug("block checked",
		zap.Uint64("height", height),
		zap.Int("txs", res.TxCount),
		zap.Bool("ordered", res.Ordered),
		zap.Int("violation_index", res.ViolationIndex),
	)
	return res, nil
}
