package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_agent/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string) *Client {
	return NewClient(config.Config{FunctionURL: url}, zap.NewNop())
}

func TestGetInventoryKPIsReturnsRawBody(t *testing.T) {
	const payload = `{"items":[{"key":"y1sp001","total_sales":2200}]}`

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	body, err := newTestClient(srv.URL).GetInventoryKPIs(context.Background(), "y1sp001")
	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "y1sp001", gotKey)
}

func TestGetInventoryKPIsOmitsEmptyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("key"))
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetInventoryKPIs(context.Background(), "   ")
	require.NoError(t, err)
}

func TestGetInventoryKPIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"inventory data format: missing column"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetInventoryKPIs(context.Background(), "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "data format")
}

func TestGetInventoryKPIsMissingURL(t *testing.T) {
	_, err := newTestClient("").GetInventoryKPIs(context.Background(), "y1sp001")
	assert.ErrorIs(t, err, ErrMissingFunctionURL)
}
