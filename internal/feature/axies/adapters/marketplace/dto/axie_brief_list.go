// Package dto defines data transfer objects for the Axie marketplace
// GraphQL responses.
package dto

import "encoding/json"

// AxieBriefListResponse represents the GraphQL response for the axies query.
// Containers are pointers so an absent level can be told apart from an
// empty one. Results stays raw so an absent key (nil), an explicit null
// and a non-sequence value can each be classified.
type AxieBriefListResponse struct {
	Data *struct {
		Axies *struct {
			Results json.RawMessage `json:"results"`
		} `json:"axies"`
	} `json:"data"`
}

// AxieBrief is one listing in the results sequence. Required fields are
// pointers so missing values surface as nil instead of zero values.
// The marketplace reports id and prices as JSON strings.
type AxieBrief struct {
	ID           *string `json:"id"`
	Name         *string `json:"name"`
	Class        *string `json:"class"`
	Stage        *int    `json:"stage"`
	HighestOffer *struct {
		CurrentPriceUSD *string `json:"currentPriceUsd"`
	} `json:"highestOffer"`
}
