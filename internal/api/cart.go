package api

import (
	"context"
	"fmt"
)

// Cart returns the user's cart lines as stored by the server. Lines for the
// same product are not merged here.
func (c *Client) Cart(ctx context.Context) ([]CartItem, error) {
	var resp struct {
		CartItems []CartItem `json:"cartItems"`
	}
	if err := c.get(ctx, "/cart", nil, &resp); err != nil {
		return nil, err
	}
	return resp.CartItems, nil
}

// AddCartItem adds quantity units of a product to the cart.
func (c *Client) AddCartItem(ctx context.Context, productID, quantity int) (CartItem, error) {
	body := struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	var resp struct {
		CartItem CartItem `json:"cartItem"`
	}
	if err := c.post(ctx, "/cart", body, &resp); err != nil {
		return CartItem{}, err
	}
	return resp.CartItem, nil
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return c.patch(ctx, cartItemPath(itemID), body, nil)
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int) error {
	return c.delete(ctx, cartItemPath(itemID), nil)
}

func cartItemPath(id int) string {
	return fmt.Sprintf("/cart/%d", id)
}
