package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
)

// DefaultAdminRole is the OpenZeppelin AccessControl DEFAULT_ADMIN_ROLE (bytes32 zero).
var DefaultAdminRole = [32]byte{}

// ContractMethods names the read-only functions queried on the contract.
type ContractMethods struct {
	MerkleRoot string
	HasRole    string
	Prime      string
}

// DefaultContractMethods returns the method names of the reference contract.
func DefaultContractMethods() ContractMethods {
	return ContractMethods{
		MerkleRoot: "merkleRoot",
		HasRole:    "hasRole",
		Prime:      "getPrimeByOwner",
	}
}

// ContractReader reads values from a deployed contract with eth_call.
type ContractReader struct {
	caller  ContractCaller
	address common.Address
	abi     abi.ABI
	methods ContractMethods
}

// NewContractReader validates that the ABI declares every queried method.
func NewContractReader(caller ContractCaller, info ContractInfo, methods ContractMethods) (*ContractReader, error) {
	for _, name := range []string{methods.MerkleRoot, methods.HasRole, methods.Prime} {
		if _, ok := info.ABI.Methods[name]; !ok {
			return nil, fmt.Errorf("%w: abi has no method %q", ErrContractInfo, name)
		}
	}
	return &ContractReader{
		caller:  caller,
		address: info.Address,
		abi:     info.ABI,
		methods: methods,
	}, nil
}

// Address returns the contract address.
func (r *ContractReader) Address() common.Address {
	return r.address
}

// Read returns the Merkle root, whether admin holds the default admin role and the prime owned by owner.
func (r *ContractReader) Read(ctx context.Context, admin, owner common.Address) (model.ContractValues, error) {
	root, err := r.MerkleRoot(ctx)
	if err != nil {
		return model.ContractValues{}, err
	}
	hasRole, err := r.HasRole(ctx, DefaultAdminRole, admin)
	if err != nil {
		return model.ContractValues{}, err
	}
	prime, err := r.PrimeByOwner(ctx, owner)
	if err != nil {
		return model.ContractValues{}, err
	}
	return model.ContractValues{
		MerkleRoot:   root,
		HasAdminRole: hasRole,
		Prime:        prime,
	}, nil
}

// MerkleRoot returns the stored Merkle root.
func (r *ContractReader) MerkleRoot(ctx context.Context) ([32]byte, error) {
	out, err := r.call(ctx, r.methods.MerkleRoot)
	if err != nil {
		return [32]byte{}, err
	}
	root, ok := out[0].([32]byte)
	if !ok {
		return [32]byte{}, fmt.Errorf("%s returned %T, want bytes32", r.methods.MerkleRoot, out[0])
	}
	return root, nil
}

// HasRole reports whether account holds role.
func (r *ContractReader) HasRole(ctx context.Context, role [32]byte, account common.Address) (bool, error) {
	out, err := r.call(ctx, r.methods.HasRole, role, account)
	if err != nil {
		return false, err
	}
	has, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("%s returned %T, want bool", r.methods.HasRole, out[0])
	}
	return has, nil
}

// PrimeByOwner returns the prime associated with owner.
func (r *ContractReader) PrimeByOwner(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := r.call(ctx, r.methods.Prime, owner)
	if err != nil {
		return nil, err
	}
	return toBigInt(r.methods.Prime, out[0])
}

func (r *ContractReader) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s call: %w", method, err)
	}
	result, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	out, err := r.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("unpack %s result: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return out, nil
}

func toBigInt(method string, v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	default:
		return nil, fmt.Errorf("%s returned %T, want integer", method, v)
	}
}
