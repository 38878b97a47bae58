package di

import (
	"axie_backend/internal/config"
	"axie_backend/internal/feature/axies/adapters/marketplace"
	infrahttp "axie_backend/internal/platform/http"
)

// NewMarketplaceClient creates a fully configured marketplace client with
// its HTTP client.
func NewMarketplaceClient(cfg config.MarketplaceConfig) *marketplace.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return marketplace.NewClient(cfg, httpClient)
}
