// Package handler provides the HTTP handler for the contract feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"axie_backend/internal/api"
	"axie_backend/internal/feature/contract/usecase"
)

// ContractUsecase performs one read-only contract query.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ContractUsecase interface {
	Query(ctx context.Context, action, address string) (*usecase.Result, error)
}

// ContractHandler handles GET /get-smart-contract-data.
type ContractHandler struct {
	contract ContractUsecase
}

// NewContractHandler creates a new ContractHandler with the injected usecase.
func NewContractHandler(contract ContractUsecase) *ContractHandler {
	return &ContractHandler{contract: contract}
}

// Get dispatches the requested action against the token contract.
// Every failure kind answers 400 with an error body; uint256 results are
// rendered as decimal strings so values above 2^53 survive JSON.
func (h *ContractHandler) Get(c *gin.Context) {
	action := c.Query("action")
	address := c.Query("address")

	result, err := h.contract.Query(c.Request.Context(), action, address)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: errorMessage(err)})
		return
	}

	switch result.Action {
	case usecase.ActionTotalSupply:
		c.JSON(http.StatusOK, api.TotalSupplyResponse{TotalSupply: result.Number.String()})
	case usecase.ActionBalanceOf:
		c.JSON(http.StatusOK, api.BalanceResponse{Balance: result.Number.String()})
	case usecase.ActionName:
		c.JSON(http.StatusOK, api.NameResponse{Name: result.Text})
	case usecase.ActionSymbol:
		c.JSON(http.StatusOK, api.SymbolResponse{Symbol: result.Text})
	}
}

func errorMessage(err error) string {
	var callErr *usecase.ContractCallError
	switch {
	case errors.Is(err, usecase.ErrInvalidAction):
		return "Invalid action."
	case errors.Is(err, usecase.ErrMissingAddress):
		return "Missing 'address' parameter."
	case errors.Is(err, usecase.ErrInvalidAddress):
		return "Invalid 'address' parameter."
	case errors.As(err, &callErr):
		slog.Warn("contract call failed", "action", callErr.Action, "error", callErr.Err)
		return err.Error()
	default:
		slog.Warn("contract query failed", "error", err)
		return err.Error()
	}
}
