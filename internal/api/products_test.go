package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
)

func TestSearchProducts_QueryAndEnvelope(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, http.StatusOK, map[string]any{
			"message": "ok",
			"total":   42,
			"data": []map[string]any{
				{"id": 1, "name": "Phone", "salesPrice": 80, "regularPrice": 100, "averageRating": 4.5},
				{"id": 2, "name": "Case", "regularPrice": 10},
			},
		})
	})

	page, err := client.SearchProducts(context.Background(), api.SearchParams{
		Keyword:   "phone",
		MinRating: 4,
		Page:      3,
		PageSize:  12,
	})
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "keyword=phone&limit=12&minRating=4&page=3", gotQuery)
	assert.Equal(t, 42, page.Total)
	require.Len(t, page.Items, 2)
	assert.InDelta(t, 80.0, page.Items[0].Price(), 0.001)
	assert.InDelta(t, 10.0, page.Items[1].Price(), 0.001)
}

func TestSearchProducts_TotalDefaultsToItemCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"data": []map[string]any{{"id": 1}, {"id": 2}}})
	})

	page, err := client.SearchProducts(context.Background(), api.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestProductEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *api.Client) error
		wantMethod string
		wantPath   string
	}{
		{name: "list", wantMethod: http.MethodGet, wantPath: "/product", call: func(c *api.Client) error {
			_, err := c.ListProducts(context.Background())
			return err
		}},
		{name: "available", wantMethod: http.MethodGet, wantPath: "/product/getAvailableProducts", call: func(c *api.Client) error {
			_, err := c.AvailableProducts(context.Background())
			return err
		}},
		{name: "recommended", wantMethod: http.MethodGet, wantPath: "/product/recommended", call: func(c *api.Client) error {
			_, err := c.RecommendedProducts(context.Background())
			return err
		}},
		{name: "show", wantMethod: http.MethodGet, wantPath: "/product/9", call: func(c *api.Client) error {
			_, err := c.GetProduct(context.Background(), 9)
			return err
		}},
		{name: "create", wantMethod: http.MethodPost, wantPath: "/product", call: func(c *api.Client) error {
			_, err := c.CreateProduct(context.Background(), api.ProductInput{Name: "Lamp"})
			return err
		}},
		{name: "update", wantMethod: http.MethodPut, wantPath: "/product/9", call: func(c *api.Client) error {
			_, err := c.UpdateProduct(context.Background(), 9, api.ProductInput{Name: "Lamp"})
			return err
		}},
		{name: "delete", wantMethod: http.MethodDelete, wantPath: "/product/9", call: func(c *api.Client) error {
			return c.DeleteProduct(context.Background(), 9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, path string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				if r.Method == http.MethodGet && r.URL.Path != "/product/9" {
					writeJSON(t, w, http.StatusOK, map[string]any{"data": []any{}})
					return
				}
				writeJSON(t, w, http.StatusOK, map[string]any{"data": map[string]any{"id": 9, "name": "Lamp"}})
			})

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantMethod, method)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestCreateProduct_Body(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(t, w, http.StatusCreated, map[string]any{"data": map[string]any{"id": 5, "name": "Lamp"}})
	})

	p, err := client.CreateProduct(context.Background(), api.ProductInput{Name: "Lamp", RegularPrice: 20, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.Equal(t, "Lamp", body["name"])
	assert.InDelta(t, 20.0, body["regularPrice"], 0.001)
}
