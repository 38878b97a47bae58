// Package ethereum provides the JSON-RPC bound caller for the AXS token
// contract's view functions.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"axie_backend/internal/config"
	"axie_backend/internal/feature/contract/usecase"
)

// erc20ViewABI covers exactly the four view functions this service exposes.
const erc20ViewABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "totalSupply",
		"outputs": [{"name": "", "type": "uint256"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "_owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "", "type": "uint256"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "name",
		"outputs": [{"name": "", "type": "string"}],
		"payable": false,
		"stateMutability": "pure",
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"name": "", "type": "string"}],
		"payable": false,
		"stateMutability": "pure",
		"type": "function"
	}
]`

// Caller implements usecase.ContractCaller over a JSON-RPC endpoint.
// Each call dials its own connection and verifies it against the chain
// head first, so every request is independent and stateless.
type Caller struct {
	cfg      config.EthereumConfig
	contract common.Address
	abi      abi.ABI
}

// Compile-time check that Caller implements ContractCaller.
var _ usecase.ContractCaller = (*Caller)(nil)

// NewCaller parses the ABI once and prepares a caller for the configured
// contract address.
func NewCaller(cfg config.EthereumConfig) (*Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ViewABI))
	if err != nil {
		return nil, fmt.Errorf("parse ERC-20 ABI: %w", err)
	}
	return &Caller{
		cfg:      cfg,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
	}, nil
}

// connect dials the JSON-RPC endpoint and probes the chain head. A failure
// of either step means the network is unavailable for this request.
func (c *Caller) connect(ctx context.Context) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, c.cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrNetworkUnavailable, err)
	}
	if _, err := client.BlockNumber(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", usecase.ErrNetworkUnavailable, err)
	}
	return client, nil
}

// call runs one view function and unpacks its outputs.
func (c *Caller) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	bound := bind.NewBoundContract(c.contract, c.abi, client, client, client)

	var out []interface{}
	if err := bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalSupply invokes totalSupply().
func (c *Caller) TotalSupply(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, "totalSupply")
	if err != nil {
		return nil, err
	}
	return unpackBigInt(out, "totalSupply")
}

// BalanceOf invokes balanceOf(address) for an already checksummed address.
func (c *Caller) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	out, err := c.call(ctx, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	return unpackBigInt(out, "balanceOf")
}

// Name invokes name().
func (c *Caller) Name(ctx context.Context) (string, error) {
	out, err := c.call(ctx, "name")
	if err != nil {
		return "", err
	}
	return unpackString(out, "name")
}

// Symbol invokes symbol().
func (c *Caller) Symbol(ctx context.Context) (string, error) {
	out, err := c.call(ctx, "symbol")
	if err != nil {
		return "", err
	}
	return unpackString(out, "symbol")
}

func unpackBigInt(out []interface{}, method string) (*big.Int, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("%s: unexpected output count %d", method, len(out))
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", method, out[0])
	}
	return v, nil
}

func unpackString(out []interface{}, method string) (string, error) {
	if len(out) != 1 {
		return "", fmt.Errorf("%s: unexpected output count %d", method, len(out))
	}
	v, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected output type %T", method, out[0])
	}
	return v, nil
}
