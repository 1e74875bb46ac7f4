// Package service runs block ordering inspections.
package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (model.Block, error)
	}
	ContractReader interface {
		Read(ctx context.Context, admin, owner common.Address) (model.ContractValues, error)
	}
	InspectorMetrics interface {
		ObserveLatestHeight(err error, height uint64)
		ObserveBlock(err error, ordered bool, txs int, started time.Time)
		ObserveContractRead(err error)
	}
)
