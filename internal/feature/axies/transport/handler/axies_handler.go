// Package handler provides the HTTP handlers for the axies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"axie_backend/internal/api"
	"axie_backend/internal/feature/axies/domain/entity"
	"axie_backend/internal/feature/axies/usecase"
)

// SyncUsecase triggers one catalog sync.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SyncUsecase interface {
	Sync(ctx context.Context) error
}

// AxiesUsecase reads the stored catalog snapshot.
type AxiesUsecase interface {
	GetAll(ctx context.Context) (map[entity.Class][]entity.Axie, error)
}

// AxiesHandler handles HTTP requests for the catalog endpoints.
type AxiesHandler struct {
	sync  SyncUsecase
	axies AxiesUsecase
}

// NewAxiesHandler creates a new AxiesHandler with the injected usecases.
func NewAxiesHandler(sync SyncUsecase, axies AxiesUsecase) *AxiesHandler {
	return &AxiesHandler{sync: sync, axies: axies}
}

// Fetch handles POST /fetch-axie-data: it runs the sync pipeline once.
//
// Failure kinds map to distinct statuses: upstream transport failures are
// 400, an empty catalog is 404, and a malformed response (bad shape or a
// listing missing a required field) is 500.
func (h *AxiesHandler) Fetch(c *gin.Context) {
	if err := h.sync.Sync(c.Request.Context()); err != nil {
		var missing *usecase.MissingFieldError
		switch {
		case errors.Is(err, usecase.ErrUpstreamUnavailable):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error in fetching Axies: " + err.Error()})
		case errors.Is(err, usecase.ErrNoData):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No Axies found or invalid structure."})
		case errors.Is(err, usecase.ErrUpstreamShape):
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Invalid data structure returned."})
		case errors.As(err, &missing):
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("axie sync failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Axie data processed successfully!"})
}

// Get handles GET /get-axie-data: the full stored snapshot, one named list
// per class.
func (h *AxiesHandler) Get(c *gin.Context) {
	byClass, err := h.axies.GetAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to read axie data", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.AxieDataResponse{
		BeastClass:   toResponses(byClass[entity.ClassBeast]),
		AquaticClass: toResponses(byClass[entity.ClassAquatic]),
		PlantClass:   toResponses(byClass[entity.ClassPlant]),
		BirdClass:    toResponses(byClass[entity.ClassBird]),
		BugClass:     toResponses(byClass[entity.ClassBug]),
		ReptileClass: toResponses(byClass[entity.ClassReptile]),
		MechClass:    toResponses(byClass[entity.ClassMech]),
		DawnClass:    toResponses(byClass[entity.ClassDawn]),
		DuskClass:    toResponses(byClass[entity.ClassDusk]),
	})
}

func toResponses(axies []entity.Axie) []api.AxieResponse {
	out := make([]api.AxieResponse, 0, len(axies))
	for _, a := range axies {
		out = append(out, api.AxieResponse{
			AxieID:          a.AxieID,
			Name:            a.Name,
			Stage:           a.Stage,
			CurrentPriceUSD: a.PriceUSD,
		})
	}
	return out
}
