// Package api defines the JSON request and response types shared by the
// HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry
// no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest is the request body for POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request body for POST /refresh and POST /logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AxieResponse is one stored marketplace listing.
type AxieResponse struct {
	AxieID          int     `json:"axie_id"`
	Name            string  `json:"name"`
	Stage           int     `json:"stage"`
	CurrentPriceUSD float64 `json:"current_price_usd"`
}

// AxieDataResponse is the body of GET /get-axie-data: one named list per
// class, always present even when empty.
type AxieDataResponse struct {
	BeastClass   []AxieResponse `json:"beast_class"`
	AquaticClass []AxieResponse `json:"aquatic_class"`
	PlantClass   []AxieResponse `json:"plant_class"`
	BirdClass    []AxieResponse `json:"bird_class"`
	BugClass     []AxieResponse `json:"bug_class"`
	ReptileClass []AxieResponse `json:"reptile_class"`
	MechClass    []AxieResponse `json:"mech_class"`
	DawnClass    []AxieResponse `json:"dawn_class"`
	DuskClass    []AxieResponse `json:"dusk_class"`
}

// TotalSupplyResponse is the body for action=totalSupply. The value is a
// decimal string because uint256 results do not fit a JSON number.
type TotalSupplyResponse struct {
	TotalSupply string `json:"total_supply"`
}

// BalanceResponse is the body for action=balanceOf, with the same decimal
// string encoding as TotalSupplyResponse.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// NameResponse is the body for action=name.
type NameResponse struct {
	Name string `json:"name"`
}

// SymbolResponse is the body for action=symbol.
type SymbolResponse struct {
	Symbol string `json:"symbol"`
}
