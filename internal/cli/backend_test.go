package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/cli"
	"github.com/rshade/storefront/internal/config"
)

// fakeBackend is an in-memory storefront server.
type fakeBackend struct {
	mu       sync.Mutex
	version  string
	products []api.Product
	cart     []api.CartItem
	orders   []api.Order
	paid     []int
	searches []string
	wishlist []api.Product
	reviews  []api.Review
	roles    []api.Role
	coupons  []api.Coupon
}

func newFakeBackend(t *testing.T, products int) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{version: "1.3.0"}
	for i := 1; i <= products; i++ {
		b.products = append(b.products, api.Product{
			ID:            i,
			Name:          fmt.Sprintf("Product %d", i),
			RegularPrice:  float64(i * 10),
			Quantity:      i,
			IsAvailable:   i%2 == 0,
			AverageRating: float64(i%5) + 0.5,
			Category:      &api.Category{ID: 1, Name: "Lamps"},
		})
	}
	b.orders = []api.Order{
		{ID: 31, TrackingNumber: "TRK-031", Status: api.OrderPending, TotalAmount: 120, UpdatedAt: time.Unix(100, 0)},
		{ID: 32, TrackingNumber: "TRK-032", Status: api.OrderCompleted, TotalAmount: 80, Paid: true, UpdatedAt: time.Unix(200, 0)},
		{ID: 33, TrackingNumber: "TRK-033", Status: api.OrderPending, TotalAmount: 45.5, UpdatedAt: time.Unix(300, 0)},
	}

	srv := httptest.NewServer(b.routes())
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		if b.version == "" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, api.ServerVersion{Version: b.version})
	})
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, api.Envelope[[]api.Product]{Data: b.products})
	})
	mux.HandleFunc("GET /product/getAvailableProducts", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		var out []api.Product
		for _, p := range b.products {
			if p.IsAvailable {
				out = append(out, p)
			}
		}
		writeJSON(w, api.Envelope[[]api.Product]{Data: out})
	})
	mux.HandleFunc("GET /product/recommended", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, api.Envelope[[]api.Product]{Data: b.products[:min(2, len(b.products))]})
	})
	mux.HandleFunc("GET /product/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		b.mu.Lock()
		defer b.mu.Unlock()
		i := slices.IndexFunc(b.products, func(p api.Product) bool { return p.ID == id })
		if i < 0 {
			http.Error(w, `{"message":"Product not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, api.Envelope[api.Product]{Data: b.products[i]})
	})
	mux.HandleFunc("GET /search", b.search)
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, map[string]any{"cartItems": b.cart})
	})
	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var body struct {
			ProductID int `json:"productId"`
			Quantity  int `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		defer b.mu.Unlock()
		item := api.CartItem{ID: len(b.cart) + 1, Quantity: body.Quantity, Product: b.products[body.ProductID-1]}
		b.cart = append(b.cart, item)
		writeJSON(w, map[string]any{"cartItem": item})
	})
	mux.HandleFunc("GET /checkout/getall-order", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.orders)
	})
	mux.HandleFunc("POST /buyer/payment", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var body struct {
			OrderID int `json:"orderId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.paid = append(b.paid, body.OrderID)
		b.mu.Unlock()
		writeJSON(w, api.PaymentResult{Success: true, URL: "https://pay.example.com/" + strconv.Itoa(body.OrderID)})
	})
	mux.HandleFunc("GET /buyer/getOneWishlist", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.writeWishlist(w)
	})
	mux.HandleFunc("POST /buyer/addItemToWishlist", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		id := decodeProductID(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.wishlist = append(b.wishlist, b.products[id-1])
		b.writeWishlist(w)
	})
	mux.HandleFunc("POST /buyer/removeToWishlist", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		id := decodeProductID(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.wishlist = slices.DeleteFunc(b.wishlist, func(p api.Product) bool { return p.ID == id })
		b.writeWishlist(w)
	})
	mux.HandleFunc("POST /review", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var review api.Review
		_ = json.NewDecoder(r.Body).Decode(&review)
		b.mu.Lock()
		defer b.mu.Unlock()
		review.ID = len(b.reviews) + 1
		b.reviews = append(b.reviews, review)
		writeJSON(w, api.Envelope[api.Review]{Data: review})
	})
	mux.HandleFunc("GET /roles", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, map[string]any{"roles": b.roles})
	})
	mux.HandleFunc("POST /roles", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var role api.Role
		_ = json.NewDecoder(r.Body).Decode(&role)
		b.mu.Lock()
		defer b.mu.Unlock()
		role.ID = len(b.roles) + 1
		b.roles = append(b.roles, role)
		writeJSON(w, map[string]any{"role": role})
	})
	mux.HandleFunc("DELETE /roles/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		b.mu.Lock()
		defer b.mu.Unlock()
		b.roles = slices.DeleteFunc(b.roles, func(role api.Role) bool { return role.ID == id })
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /coupons/mine", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.coupons)
	})
	mux.HandleFunc("POST /coupons", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var coupon api.Coupon
		_ = json.NewDecoder(r.Body).Decode(&coupon)
		b.mu.Lock()
		defer b.mu.Unlock()
		coupon.ID = len(b.coupons) + 1
		coupon.Code = fmt.Sprintf("CODE%d", coupon.ID)
		b.coupons = append(b.coupons, coupon)
		writeJSON(w, coupon)
	})
	return mux
}

func (b *fakeBackend) writeWishlist(w http.ResponseWriter) {
	var resp struct {
		Data struct {
			Product []api.Product `json:"product"`
		} `json:"data"`
	}
	resp.Data.Product = b.wishlist
	writeJSON(w, resp)
}

func decodeProductID(r *http.Request) int {
	var body struct {
		ProductID int `json:"productId"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body.ProductID
}

// search pages the catalog by keyword using the page and limit parameters.
func (b *fakeBackend) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := strings.ToLower(q.Get("keyword"))
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	b.mu.Lock()
	defer b.mu.Unlock()
	b.searches = append(b.searches, r.URL.RawQuery)
	var matching []api.Product
	for _, p := range b.products {
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			matching = append(matching, p)
		}
	}
	start := min(max(page-1, 0)*limit, len(matching))
	end := min(start+limit, len(matching))
	writeJSON(w, api.Envelope[[]api.Product]{Data: matching[start:end], Total: len(matching)})
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer test-token" {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]string{"message": "Please login"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// setupCLITest isolates config and logging for one test.
func setupCLITest(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvAPIURL, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

// runCLI executes the root command against srv and returns its output.
func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if srv != nil {
		args = append([]string{"--api-url", srv.URL}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func signIn(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvToken, "test-token")
	config.ResetGlobalConfigForTest()
}

func requireJSON(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}
