package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnavailable is returned when the JSON-RPC node cannot be
	// reached or the chain-head probe fails.
	ErrNetworkUnavailable = errors.New("failed to connect to Ethereum network")

	// ErrMissingAddress is returned when action=balanceOf lacks the
	// address parameter.
	ErrMissingAddress = errors.New("missing 'address' parameter")

	// ErrInvalidAddress is returned when the address parameter is not a
	// well-formed hex address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAction is returned for an unrecognized action.
	ErrInvalidAction = errors.New("invalid action")
)

// ContractCallError wraps a failed on-chain view call (revert, malformed
// ABI response).
type ContractCallError struct {
	Action string
	Err    error
}

func (e *ContractCallError) Error() string {
	return fmt.Sprintf("contract call %s failed: %v", e.Action, e.Err)
}

func (e *ContractCallError) Unwrap() error {
	return e.Err
}
