package api

import "context"

type wishlistResponse struct {
	Data struct {
		Product []Product `json:"product"`
	} `json:"data"`
}

// Wishlist returns the products on the user's wishlist.
func (c *Client) Wishlist(ctx context.Context) ([]Product, error) {
	var resp wishlistResponse
	if err := c.get(ctx, "/buyer/getOneWishlist", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Product, nil
}

// AddToWishlist adds a product and returns the updated wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID int) ([]Product, error) {
	return c.changeWishlist(ctx, "/buyer/addItemToWishlist", productID)
}

// RemoveFromWishlist removes a product and returns the updated wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int) ([]Product, error) {
	return c.changeWishlist(ctx, "/buyer/removeToWishlist", productID)
}

func (c *Client) changeWishlist(ctx context.Context, path string, productID int) ([]Product, error) {
	body := struct {
		ProductID int `json:"productId"`
	}{ProductID: productID}

	var resp wishlistResponse
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Product, nil
}
