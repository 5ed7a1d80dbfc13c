package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/storefront/internal/api"
)

// ErrNotInCart is returned when a cart line ID is not held by the cart.
var ErrNotInCart = errors.New("item is not in the cart")

// CartAPI is the subset of the API client used by Cart.
type CartAPI interface {
	Cart(ctx context.Context) ([]api.CartItem, error)
	AddCartItem(ctx context.Context, productID, quantity int) (api.CartItem, error)
	UpdateCartItem(ctx context.Context, itemID, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int) error
}

// Cart is the request-state container for the shopping cart.
type Cart struct {
	items  *Collection[api.CartItem]
	client CartAPI
}

// NewCart creates an empty cart backed by client.
func NewCart(client CartAPI) *Cart {
	return &Cart{
		items:  NewCollection("cart items", func(i api.CartItem) int { return i.ID }),
		client: client,
	}
}

// Snapshot returns a copy of the cart state.
func (c *Cart) Snapshot() Snapshot[api.CartItem] {
	return c.items.Snapshot()
}

// Fetch loads the cart, merging lines that refer to the same product.
func (c *Cart) Fetch(ctx context.Context) error {
	return c.items.Fetch(ctx, func(ctx context.Context) ([]api.CartItem, error) {
		items, err := c.client.Cart(ctx)
		if err != nil {
			return nil, err
		}
		return MergeCartItems(items), nil
	})
}

// Add puts quantity units of a product in the cart. The returned line
// replaces the line with the same ID; lines for the same product are then
// folded together.
func (c *Cart) Add(ctx context.Context, productID, quantity int) error {
	_, err := c.items.UpdateWith(ctx, func(ctx context.Context) (api.CartItem, error) {
		return c.client.AddCartItem(ctx, productID, quantity)
	}, MergeCartItems)
	return err
}

// UpdateQuantity sets the quantity of a cart line. The line must already be
// held; fetch the cart first.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID, quantity int) error {
	line, found := c.line(itemID)
	if !found {
		return fmt.Errorf("%w: %d", ErrNotInCart, itemID)
	}
	_, err := c.items.Update(ctx, func(ctx context.Context) (api.CartItem, error) {
		if err := c.client.UpdateCartItem(ctx, itemID, quantity); err != nil {
			return api.CartItem{}, err
		}
		line.Quantity = quantity
		return line, nil
	})
	return err
}

// Remove deletes a cart line.
func (c *Cart) Remove(ctx context.Context, itemID int) error {
	return c.items.Delete(ctx, itemID, func(ctx context.Context) error {
		return c.client.RemoveCartItem(ctx, itemID)
	})
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() float64 {
	return Subtotal(c.items.Snapshot().Items)
}

// Count returns the number of units in the cart.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items.Snapshot().Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) line(itemID int) (api.CartItem, bool) {
	for _, item := range c.items.Snapshot().Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return api.CartItem{}, false
}

// MergeCartItems folds lines for the same product into the first such line,
// summing quantities. Order of first appearance is kept.
func MergeCartItems(items []api.CartItem) []api.CartItem {
	merged := make([]api.CartItem, 0, len(items))
	byProduct := make(map[int]int, len(items))
	for _, item := range items {
		if i, ok := byProduct[item.Product.ID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		byProduct[item.Product.ID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// Subtotal returns the sum of quantity times unit price over items.
func Subtotal(items []api.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
