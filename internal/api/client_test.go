package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/logging"
)

// newTestClient starts an httptest server under /api/v1 and returns a
// client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...api.Option) *api.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", handler))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := api.New(server.URL+"/api/v1/", opts...)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "/api/v1", "ftp://host/api"} {
		_, err := api.New(raw)
		assert.ErrorIs(t, err, api.ErrInvalidBaseURL, raw)
	}
}

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(t, w, http.StatusOK, map[string]any{"data": []any{}})
	}, api.WithToken("tok"))

	ctx := logging.ContextWithTraceID(context.Background(), "01TRACE")
	_, err := client.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "01TRACE", got.Get(api.HeaderTraceID))
	_, parseErr := uuid.Parse(got.Get(api.HeaderRequestID))
	assert.NoError(t, parseErr, "request id must be a UUID")
	assert.True(t, client.HasToken())
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(t, w, http.StatusOK, map[string]any{"data": []any{}})
	})

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get(api.HeaderTraceID))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		wantMsg  string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Token expired"}`, sentinel: api.ErrUnauthorized, wantMsg: "Token expired"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"Product not found"}`, sentinel: api.ErrNotFound, wantMsg: "Product not found"},
		{name: "server error plain text", status: http.StatusInternalServerError, body: "boom\n", wantMsg: "boom"},
		{name: "empty body", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetProduct(context.Background(), 7)
			require.Error(t, err)

			var apiErr *api.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/product/7", apiErr.Path)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.NotEmpty(t, apiErr.RequestID)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			} else {
				assert.False(t, errors.Is(err, api.ErrNotFound))
				assert.False(t, errors.Is(err, api.ErrUnauthorized))
			}
		})
	}
}

func TestMessage(t *testing.T) {
	withMsg := &api.APIError{StatusCode: 400, Message: "Out of stock"}
	assert.Equal(t, "Out of stock", api.Message(withMsg, "fallback"))
	assert.Equal(t, "fallback", api.Message(&api.APIError{StatusCode: 500}, "fallback"))
	assert.Equal(t, "fallback", api.Message(errors.New("dial tcp"), "fallback"))
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"data": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListProducts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	})

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding GET /product response")
}
