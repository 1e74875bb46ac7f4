package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Block is a fetched block with its full transaction list in block order.
type Block struct {
	Chain  Chain
	Number uint64
	Hash   common.Hash
	// BaseFee is nil for blocks produced before the fee market upgrade.
	BaseFee      *big.Int
	Transactions []Transaction
}

// HasBaseFee reports whether the block belongs to the fee market era.
func (b Block) HasBaseFee() bool {
	return b.BaseFee != nil
}

// ContractValues holds the values read from the inspected contract.
type ContractValues struct {
	MerkleRoot   [32]byte
	HasAdminRole bool
	Prime        *big.Int
}
