package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TxType is the EIP-2718 transaction type byte.
type TxType uint8

const (
	LegacyTxType     TxType = 0
	AccessListTxType TxType = 1
	DynamicFeeTxType TxType = 2
	BlobTxType       TxType = 3
	SetCodeTxType    TxType = 4
)

// Transaction is one of LegacyTx, DynamicFeeTx or OtherTx.
type Transaction interface {
	TxHash() common.Hash
	Type() TxType
	isTransaction()
}

// LegacyTx is a type-0 transaction priced by a single gas price.
type LegacyTx struct {
	Hash     common.Hash
	GasPrice *big.Int
}

// DynamicFeeTx is a type-2 transaction with separate fee and tip caps.
type DynamicFeeTx struct {
	Hash                 common.Hash
	GasPrice             *big.Int
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
}

// OtherTx is any transaction whose type has no dedicated variant.
// The fee caps are nil when the node did not report them.
type OtherTx struct {
	Hash                 common.Hash
	TxType               TxType
	GasPrice             *big.Int
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
}

func (t LegacyTx) TxHash() common.Hash     { return t.Hash }
func (t DynamicFeeTx) TxHash() common.Hash { return t.Hash }
func (t OtherTx) TxHash() common.Hash      { return t.Hash }

func (LegacyTx) Type() TxType     { return LegacyTxType }
func (DynamicFeeTx) Type() TxType { return DynamicFeeTxType }
func (t OtherTx) Type() TxType    { return t.TxType }

func (LegacyTx) isTransaction()     {}
func (DynamicFeeTx) isTransaction() {}
func (OtherTx) isTransaction()      {}

// HasFeeCaps reports whether both EIP-1559 caps are known.
func (t OtherTx) HasFeeCaps() bool {
	return t.MaxPriorityFeePerGas != nil && t.MaxFeePerGas != nil
}
