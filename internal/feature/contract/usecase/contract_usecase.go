// Package usecase implements the read-only query dispatch for the AXS
// token contract.
package usecase

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Actions accepted by Query.
const (
	ActionTotalSupply = "totalSupply"
	ActionBalanceOf   = "balanceOf"
	ActionName        = "name"
	ActionSymbol      = "symbol"
)

// ContractCaller invokes the fixed view functions of the token contract.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ContractCaller interface {
	// TotalSupply returns the token's total supply as a uint256.
	TotalSupply(ctx context.Context) (*big.Int, error)

	// BalanceOf returns the balance of the given checksummed address.
	BalanceOf(ctx context.Context, address string) (*big.Int, error)

	// Name returns the token name.
	Name(ctx context.Context) (string, error)

	// Symbol returns the token symbol.
	Symbol(ctx context.Context) (string, error)
}

// Result is the outcome of one contract query. Number is set for the
// uint256 actions, Text for the string actions.
type Result struct {
	Action string
	Number *big.Int
	Text   string
}

// contractUsecase validates the requested action and dispatches it.
type contractUsecase struct {
	caller ContractCaller
}

// NewContractUsecase creates a new contractUsecase.
func NewContractUsecase(caller ContractCaller) *contractUsecase {
	return &contractUsecase{caller: caller}
}

// Query performs one stateless view call. balanceOf requires an address,
// which is validated and converted to its EIP-55 checksummed form before
// the call. Call failures are wrapped in ContractCallError; connectivity
// failures pass through as ErrNetworkUnavailable.
func (cu *contractUsecase) Query(ctx context.Context, action, address string) (*Result, error) {
	switch action {
	case ActionTotalSupply:
		supply, err := cu.caller.TotalSupply(ctx)
		if err != nil {
			return nil, wrapCallError(action, err)
		}
		return &Result{Action: action, Number: supply}, nil

	case ActionBalanceOf:
		if address == "" {
			return nil, ErrMissingAddress
		}
		if !common.IsHexAddress(address) {
			return nil, ErrInvalidAddress
		}
		checksummed := common.HexToAddress(address).Hex()

		balance, err := cu.caller.BalanceOf(ctx, checksummed)
		if err != nil {
			return nil, wrapCallError(action, err)
		}
		return &Result{Action: action, Number: balance}, nil

	case ActionName:
		name, err := cu.caller.Name(ctx)
		if err != nil {
			return nil, wrapCallError(action, err)
		}
		return &Result{Action: action, Text: name}, nil

	case ActionSymbol:
		symbol, err := cu.caller.Symbol(ctx)
		if err != nil {
			return nil, wrapCallError(action, err)
		}
		return &Result{Action: action, Text: symbol}, nil

	default:
		return nil, ErrInvalidAction
	}
}

func wrapCallError(action string, err error) error {
	if errors.Is(err, ErrNetworkUnavailable) {
		return err
	}
	return &ContractCallError{Action: action, Err: err}
}
