// Package marketplace provides a client for the Axie Infinity marketplace
// GraphQL gateway.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"axie_backend/internal/config"
	"axie_backend/internal/feature/axies/adapters/marketplace/dto"
	"axie_backend/internal/feature/axies/domain/entity"
	"axie_backend/internal/feature/axies/usecase"
)

// axieBriefQuery fetches the first 300 listings sorted ascending by price.
// Pagination past the first page is a known limitation.
const axieBriefQuery = `
query MyQuery {
    axies(sort: PriceAsc, from: 0, size: 300) {
        results {
            id
            name
            highestOffer {
                currentPriceUsd
            }
            class
            stage
        }
    }
}
`

// Client fetches marketplace listings. It implements usecase.MarketplaceRepository.
type Client struct {
	cfg    config.MarketplaceConfig
	client *http.Client
}

// Compile-time check that Client implements MarketplaceRepository.
var _ usecase.MarketplaceRepository = (*Client)(nil)

// NewClient creates a new marketplace Client with the given configuration
// and HTTP client.
func NewClient(cfg config.MarketplaceConfig, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchAxies issues one GraphQL request for the current listings and
// normalizes each one into a domain entity. The whole batch fails on the
// first listing with a missing required field.
func (c *Client) FetchAxies(ctx context.Context) ([]entity.Axie, error) {
	payload, err := json.Marshal(map[string]string{"query": axieBriefQuery})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http %d", usecase.ErrUpstreamUnavailable, res.StatusCode)
	}

	var body dto.AxieBriefListResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamShape, err)
	}

	// An absent results key is a malformed response; a results value that
	// is null or not a sequence reads as no listings.
	if body.Data == nil || body.Data.Axies == nil || body.Data.Axies.Results == nil {
		return nil, usecase.ErrUpstreamShape
	}

	var results []dto.AxieBrief
	if err := json.Unmarshal(body.Data.Axies.Results, &results); err != nil {
		return nil, usecase.ErrNoData
	}
	if len(results) == 0 {
		return nil, usecase.ErrNoData
	}

	axies := make([]entity.Axie, 0, len(results))
	for _, r := range results {
		a, err := normalize(r)
		if err != nil {
			return nil, err
		}
		axies = append(axies, a)
	}
	return axies, nil
}

// normalize converts one listing into a domain entity, failing with a
// MissingFieldError when a required field is absent. A missing or null best
// offer defaults the price to 0.
func normalize(r dto.AxieBrief) (entity.Axie, error) {
	if r.ID == nil {
		return entity.Axie{}, &usecase.MissingFieldError{Field: "id"}
	}
	if r.Name == nil {
		return entity.Axie{}, &usecase.MissingFieldError{Field: "name"}
	}
	if r.Class == nil {
		return entity.Axie{}, &usecase.MissingFieldError{Field: "class"}
	}
	if r.Stage == nil {
		return entity.Axie{}, &usecase.MissingFieldError{Field: "stage"}
	}

	id, err := strconv.Atoi(*r.ID)
	if err != nil {
		return entity.Axie{}, fmt.Errorf("parse id %q: %w", *r.ID, err)
	}

	price := 0.0
	if r.HighestOffer != nil && r.HighestOffer.CurrentPriceUSD != nil {
		price, err = strconv.ParseFloat(*r.HighestOffer.CurrentPriceUSD, 64)
		if err != nil {
			return entity.Axie{}, fmt.Errorf("parse currentPriceUsd %q: %w", *r.HighestOffer.CurrentPriceUSD, err)
		}
	}

	return entity.Axie{
		AxieID:   id,
		Name:     *r.Name,
		Class:    *r.Class,
		Stage:    *r.Stage,
		PriceUSD: price,
	}, nil
}
