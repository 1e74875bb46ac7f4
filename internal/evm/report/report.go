// Package report renders inspection results as text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/service"
	"github.com/olekukonko/tablewriter"
)

// Write prints one table row per checked block followed by the contract values.
func Write(w io.Writer, r service.Report) error {
	if _, err := fmt.Fprintf(w, "Chain head: %d\n", r.Latest); err != nil {
		return err
	}
	WriteBlocks(w, r.Blocks)
	return WriteContract(w, r.Contract)
}

// WriteBlocks renders the block results table.
func WriteBlocks(w io.Writer, blocks []service.BlockResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Block", "Txs", "Base fee", "Status", "First violation"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, b := range blocks {
		table.Append([]string{
			strconv.FormatUint(b.Height, 10),
			strconv.Itoa(b.TxCount),
			baseFee(b),
			status(b),
			violation(b),
		})
	}
	table.Render()
}

// WriteContract prints the contract values one per line.
func WriteContract(w io.Writer, v model.ContractValues) error {
	prime := "-"
	if v.Prime != nil {
		prime = v.Prime.String()
	}
	_, err := fmt.Fprintf(w, "Merkle root: %s\nAdmin has role: %t\nPrime owned by owner address: %s\n",
		hexutil.Encode(v.MerkleRoot[:]), v.HasAdminRole, prime)
	return err
}

func status(b service.BlockResult) string {
	if b.Ordered {
		return "ordered"
	}
	return "not ordered"
}

func baseFee(b service.BlockResult) string {
	if b.BaseFee == nil {
		return "-"
	}
	return b.BaseFee.String()
}

func violation(b service.BlockResult) string {
	if b.ViolationIndex < 0 {
		return "-"
	}
	return "tx " + strconv.Itoa(b.ViolationIndex)
}
