// Package ordering checks whether block transactions are sorted by priority fee.
package ordering

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

// Policy selects how transactions of types without a dedicated rule are priced.
type Policy string

var (
	// PolicyGasPrice prices unrecognised types by their gas price.
	PolicyGasPrice Policy = "gas-price"
	// PolicyByFields prices unrecognised types by the fee fields they carry:
	// the dynamic-fee rule when both caps are present, the legacy rule otherwise.
	PolicyByFields Policy = "by-fields"
)

// Validate returns an error for unknown policies.
func (p Policy) Validate() error {
	switch p {
	case PolicyGasPrice, PolicyByFields:
		return nil
	default:
		return fmt.Errorf("unknown transaction type policy %q", p)
	}
}

// PriorityFee derives the fee paid to the block producer per unit of gas.
// A nil baseFee means the block predates the fee market.
func PriorityFee(tx model.Transaction, baseFee *big.Int, policy Policy) *big.Int {
	switch t := tx.(type) {
	case model.LegacyTx:
		if baseFee == nil {
			return new(big.Int).Set(t.GasPrice)
		}
		return legacyFee(t.GasPrice, baseFee)
	case model.DynamicFeeTx:
		if baseFee == nil {
			return new(big.Int).Set(t.GasPrice)
		}
		return dynamicFee(t.MaxPriorityFeePerGas, t.MaxFeePerGas, baseFee)
	case model.OtherTx:
		if baseFee == nil || policy != PolicyByFields {
			return new(big.Int).Set(t.GasPrice)
		}
		if t.HasFeeCaps() {
			return dynamicFee(t.MaxPriorityFeePerGas, t.MaxFeePerGas, baseFee)
		}
		return legacyFee(t.GasPrice, baseFee)
	default:
		panic(fmt.Sprintf("ordering: unexpected transaction %T", tx))
	}
}

func legacyFee(gasPrice, baseFee *big.Int) *big.Int {
	return new(big.Int).Sub(gasPrice, baseFee)
}

func dynamicFee(maxPriorityFee, maxFee, baseFee *big.Int) *big.Int {
	headroom := new(big.Int).Sub(maxFee, baseFee)
	if maxPriorityFee.Cmp(headroom) < 0 {
		return new(big.Int).Set(maxPriorityFee)
	}
	return headroom
}
