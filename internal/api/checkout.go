package api

import "context"

// PlaceOrder turns the cart into an order.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var resp struct {
		Order Order `json:"order"`
	}
	if err := c.post(ctx, "/checkout", req, &resp); err != nil {
		return Order{}, err
	}
	return resp.Order, nil
}

// Orders returns every order of the user.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/checkout/getall-order", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PaymentResult is the response of POST /buyer/payment.
type PaymentResult struct {
	Success bool   `json:"success"       yaml:"success"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// MakePayment starts payment of an order.
func (c *Client) MakePayment(ctx context.Context, orderID int) (PaymentResult, error) {
	body := struct {
		OrderID int `json:"orderId"`
	}{OrderID: orderID}

	var res PaymentResult
	if err := c.post(ctx, "/buyer/payment", body, &res); err != nil {
		return PaymentResult{}, err
	}
	return res, nil
}
