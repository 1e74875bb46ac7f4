package ethereum

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

// rpcBlock keeps only the fields the fee checks use. Extra fields such as the
// oversized extraData of proof-of-authority chains are ignored.
type rpcBlock struct {
	Number        *hexutil.Uint64  `json:"number"`
	Hash          common.Hash      `json:"hash"`
	BaseFeePerGas *hexutil.Big     `json:"baseFeePerGas"`
	Transactions  []rpcTransaction `json:"transactions"`
}

type rpcTransaction struct {
	Hash                 common.Hash     `json:"hash"`
	Type                 *hexutil.Uint64 `json:"type"`
	GasPrice             *hexutil.Big    `json:"gasPrice"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas"`
}

// DecodeBlock maps an eth_getBlockByNumber response with full transactions into a model.Block.
func DecodeBlock(raw json.RawMessage, chain model.Chain) (model.Block, error) {
	var src *rpcBlock
	if err := json.Unmarshal(raw, &src); err != nil {
		return model.Block{}, fmt.Errorf("decode block: %w", err)
	}
	if src == nil {
		return model.Block{}, fmt.Errorf("decode block: empty response")
	}
	if src.Number == nil {
		return model.Block{}, fmt.Errorf("block %s: missing number", src.Hash)
	}

	txs := make([]model.Transaction, 0, len(src.Transactions))
	for i, tx := range src.Transactions {
		converted, err := convertTransaction(tx)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d tx %d: %w", uint64(*src.Number), i, err)
		}
		txs = append(txs, converted)
	}

	return model.Block{
		Chain:        chain,
		Number:       uint64(*src.Number),
		Hash:         src.Hash,
		BaseFee:      bigOrNil(src.BaseFeePerGas),
		Transactions: txs,
	}, nil
}

func convertTransaction(src rpcTransaction) (model.Transaction, error) {
	// Nodes predating EIP-2718 omit the type field entirely.
	txType := model.LegacyTxType
	if src.Type != nil {
		if uint64(*src.Type) > math.MaxUint8 {
			return nil, fmt.Errorf("tx %s: type %d out of range", src.Hash, uint64(*src.Type))
		}
		txType = model.TxType(*src.Type)
	}
	if src.GasPrice == nil {
		return nil, fmt.Errorf("tx %s: missing gasPrice", src.Hash)
	}

	switch txType {
	case model.LegacyTxType:
		return model.LegacyTx{
			Hash:     src.Hash,
			GasPrice: src.GasPrice.ToInt(),
		}, nil
	case model.DynamicFeeTxType:
		if src.MaxPriorityFeePerGas == nil || src.MaxFeePerGas == nil {
			return nil, fmt.Errorf("tx %s: dynamic fee transaction without fee caps", src.Hash)
		}
		return model.DynamicFeeTx{
			Hash:                 src.Hash,
			GasPrice:             src.GasPrice.ToInt(),
			MaxPriorityFeePerGas: src.MaxPriorityFeePerGas.ToInt(),
			MaxFeePerGas:         src.MaxFeePerGas.ToInt(),
		}, nil
	default:
		return model.OtherTx{
			Hash:                 src.Hash,
			TxType:               txType,
			GasPrice:             src.GasPrice.ToInt(),
			MaxPriorityFeePerGas: bigOrNil(src.MaxPriorityFeePerGas),
			MaxFeePerGas:         bigOrNil(src.MaxFeePerGas),
		}, nil
	}
}

func bigOrNil(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}
