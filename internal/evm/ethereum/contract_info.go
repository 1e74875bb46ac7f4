package ethereum

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/tidwall/gjson"
)

// ErrContractInfo marks a contract info file that cannot describe the requested contract.
var ErrContractInfo = errors.New("invalid contract info")

// ContractInfo is the deployed address and interface of a contract.
type ContractInfo struct {
	Address common.Address
	ABI     abi.ABI
}

// LoadContractInfo reads the entry for chain from a JSON file shaped as
// {"<chain>": {"address": "0x...", "abi": [...]}}. The abi may also be a JSON-encoded string.
func LoadContractInfo(path string, chain model.Chain) (ContractInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ContractInfo{}, fmt.Errorf("read contract info: %w", err)
	}
	return ParseContractInfo(data, chain)
}

// ParseContractInfo is LoadContractInfo over an in-memory document.
func ParseContractInfo(data []byte, chain model.Chain) (ContractInfo, error) {
	if !gjson.ValidBytes(data) {
		return ContractInfo{}, fmt.Errorf("%w: malformed json", ErrContractInfo)
	}
	entry := gjson.GetBytes(data, string(chain))
	if !entry.Exists() {
		return ContractInfo{}, fmt.Errorf("%w: no entry for chain %q", ErrContractInfo, chain)
	}

	address := entry.Get("address").String()
	if !common.IsHexAddress(address) {
		return ContractInfo{}, fmt.Errorf("%w: chain %q address %q", ErrContractInfo, chain, address)
	}

	abiField := entry.Get("abi")
	if !abiField.Exists() {
		return ContractInfo{}, fmt.Errorf("%w: chain %q has no abi", ErrContractInfo, chain)
	}
	abiJSON := abiField.Raw
	if abiField.Type == gjson.String {
		abiJSON = abiField.String()
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return ContractInfo{}, fmt.Errorf("%w: chain %q abi: %v", ErrContractInfo, chain, err)
	}

	return ContractInfo{
		Address: common.HexToAddress(address),
		ABI:     parsed,
	}, nil
}
