// Package model defines domain models for EVM block inspection.
package model

// Chain names an EVM JSON-RPC endpoint.
type Chain string

var (
	ETH Chain = "eth"
	BSC Chain = "bsc"
)
