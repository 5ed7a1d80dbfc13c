package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchParams filters GET /search. Zero values are omitted.
type SearchParams struct {
	Keyword   string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Page      int
	PageSize  int
}

func (p SearchParams) query() url.Values {
	q := url.Values{}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	if p.MinRating > 0 {
		q.Set("minRating", strconv.FormatFloat(p.MinRating, 'f', -1, 64))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("limit", strconv.Itoa(p.PageSize))
	}
	return q
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []Product `json:"items" yaml:"items"`
	// Total is the number of matching products across all pages. When the
	// server omits it, it is the number of items returned.
	Total int `json:"total" yaml:"total"`
}

func (c *Client) productList(ctx context.Context, path string, query url.Values) (ProductPage, error) {
	var env Envelope[[]Product]
	if err := c.get(ctx, path, query, &env); err != nil {
		return ProductPage{}, err
	}
	total := env.Total
	if total == 0 {
		total = len(env.Data)
	}
	return ProductPage{Items: env.Data, Total: total}, nil
}

// ListProducts returns the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	page, err := c.productList(ctx, "/product", nil)
	return page.Items, err
}

// AvailableProducts returns products that are in stock and listed.
func (c *Client) AvailableProducts(ctx context.Context) ([]Product, error) {
	page, err := c.productList(ctx, "/product/getAvailableProducts", nil)
	return page.Items, err
}

// RecommendedProducts returns the server's recommendations for the user.
func (c *Client) RecommendedProducts(ctx context.Context) ([]Product, error) {
	page, err := c.productList(ctx, "/product/recommended", nil)
	return page.Items, err
}

// SearchProducts returns one page of products matching params.
func (c *Client) SearchProducts(ctx context.Context, params SearchParams) (ProductPage, error) {
	return c.productList(ctx, "/search", params.query())
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var env Envelope[Product]
	if err := c.get(ctx, productPath(id), nil, &env); err != nil {
		return Product{}, err
	}
	return env.Data, nil
}

// CreateProduct adds a product to the vendor's catalog.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	var env Envelope[Product]
	if err := c.post(ctx, "/product", in, &env); err != nil {
		return Product{}, err
	}
	return env.Data, nil
}

// UpdateProduct replaces a product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (Product, error) {
	var env Envelope[Product]
	if err := c.put(ctx, productPath(id), in, &env); err != nil {
		return Product{}, err
	}
	return env.Data, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, productPath(id), nil)
}

func productPath(id int) string {
	return fmt.Sprintf("/product/%d", id)
}
