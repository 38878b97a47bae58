package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axie_backend/internal/feature/axies/domain/entity"
	"axie_backend/internal/feature/axies/usecase"
)

// mockSyncUsecase is a mock implementation of the SyncUsecase interface.
type mockSyncUsecase struct {
	SyncFunc func(ctx context.Context) error
}

func (m *mockSyncUsecase) Sync(ctx context.Context) error {
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx)
	}
	return nil
}

// mockAxiesUsecase is a mock implementation of the AxiesUsecase interface.
type mockAxiesUsecase struct {
	GetAllFunc func(ctx context.Context) (map[entity.Class][]entity.Axie, error)
}

func (m *mockAxiesUsecase) GetAll(ctx context.Context) (map[entity.Class][]entity.Axie, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, errors.New("GetAllFunc is not implemented")
}

func TestAxiesHandler_Fetch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		syncErr        error
		expectedStatus int
	}{
		{
			name:           "success",
			syncErr:        nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "upstream unavailable",
			syncErr:        usecase.ErrUpstreamUnavailable,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no data",
			syncErr:        usecase.ErrNoData,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad shape",
			syncErr:        usecase.ErrUpstreamShape,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing field",
			syncErr:        &usecase.MissingFieldError{Field: "name"},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unexpected error",
			syncErr:        errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAxiesHandler(
				&mockSyncUsecase{SyncFunc: func(ctx context.Context) error { return tt.syncErr }},
				&mockAxiesUsecase{},
			)

			router := gin.New()
			router.POST("/fetch-axie-data", h.Fetch)

			req, _ := http.NewRequest(http.MethodPost, "/fetch-axie-data", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "Axie data processed successfully!", body["message"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestAxiesHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	snapshot := map[entity.Class][]entity.Axie{}
	for _, class := range entity.AllClasses {
		snapshot[class] = []entity.Axie{}
	}
	snapshot[entity.ClassBeast] = []entity.Axie{
		{AxieID: 7, Name: "Chompy", Class: string(entity.ClassBeast), Stage: 4, PriceUSD: 3.25},
	}

	h := NewAxiesHandler(&mockSyncUsecase{}, &mockAxiesUsecase{
		GetAllFunc: func(ctx context.Context) (map[entity.Class][]entity.Axie, error) {
			return snapshot, nil
		},
	})

	router := gin.New()
	router.GET("/get-axie-data", h.Get)

	req, _ := http.NewRequest(http.MethodGet, "/get-axie-data", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// All nine partitions are present, empty ones as [] not null.
	keys := []string{
		"beast_class", "aquatic_class", "plant_class", "bird_class", "bug_class",
		"reptile_class", "mech_class", "dawn_class", "dusk_class",
	}
	for _, key := range keys {
		raw, ok := body[key]
		require.True(t, ok, "missing partition key %s", key)
		assert.NotEqual(t, "null", string(raw), "partition %s must not be null", key)
	}

	var beasts []map[string]any
	require.NoError(t, json.Unmarshal(body["beast_class"], &beasts))
	require.Len(t, beasts, 1)
	assert.Equal(t, float64(7), beasts[0]["axie_id"])
	assert.Equal(t, "Chompy", beasts[0]["name"])
	assert.Equal(t, 3.25, beasts[0]["current_price_usd"])
}

func TestAxiesHandler_Get_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAxiesHandler(&mockSyncUsecase{}, &mockAxiesUsecase{
		GetAllFunc: func(ctx context.Context) (map[entity.Class][]entity.Axie, error) {
			return nil, errors.New("db down")
		},
	})

	router := gin.New()
	router.GET("/get-axie-data", h.Get)

	req, _ := http.NewRequest(http.MethodGet, "/get-axie-data", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
