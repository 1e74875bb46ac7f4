package ordering

import (
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

// Result describes the outcome of an ordering check.
type Result struct {
	Ordered bool
	// ViolationIndex is the position of the first transaction whose priority fee
	// exceeds its predecessor's, or -1 when the block is ordered.
	ViolationIndex int
	// Fees holds the derived priority fees up to and including the violation.
	Fees []*big.Int
}

// IsOrderedBlock reports whether the block's transactions are sorted by
// non-increasing priority fee, pricing unrecognised types by gas price.
func IsOrderedBlock(block model.Block) bool {
	return Check(block, PolicyGasPrice).Ordered
}

// Check scans the block once and stops at the first out-of-order transaction.
func Check(block model.Block, policy Policy) Result {
	fees := make([]*big.Int, 0, len(block.Transactions))
	var previous *big.Int
	for i, tx := range block.Transactions {
		fee := PriorityFee(tx, block.BaseFee, policy)
		fees = append(fees, fee)
		if previous != nil && fee.Cmp(previous) > 0 {
			return Result{Ordered: false, ViolationIndex: i, Fees: fees}
		}
		previous = fee
	}
	return Result{Ordered: true, ViolationIndex: -1, Fees: fees}
}
