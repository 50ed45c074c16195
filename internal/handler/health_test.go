package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/radio-stations/backend/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"} without touching the store.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := do(newHTTPHandler(&mockStationServicer{}), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestGetReady(t *testing.T) {
	up := &mockStationServicer{ready: func(context.Context) error { return nil }}
	down := &mockStationServicer{ready: func(context.Context) error { return errors.New("no route to host") }}

	assert.Equal(t, http.StatusOK, do(newHTTPHandler(up), http.MethodGet, "/readyz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(newHTTPHandler(down), http.MethodGet, "/readyz", nil).Code)
}

func TestGetOpenAPI(t *testing.T) {
	rec := do(newHTTPHandler(&mockStationServicer{}), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/stations/{id}")
}
