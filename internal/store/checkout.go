package store

import (
	"context"
	"errors"
	"slices"

	"github.com/rshade/storefront/internal/api"
)

// CheckoutAPI is the subset of the API client used by Checkout.
type CheckoutAPI interface {
	PlaceOrder(ctx context.Context, req api.OrderRequest) (api.Order, error)
	Orders(ctx context.Context) ([]api.Order, error)
	MakePayment(ctx context.Context, orderID int) (api.PaymentResult, error)
}

// DraftOrderID marks an order that has not been placed yet.
const DraftOrderID = -1

// CheckoutState is a copy of the checkout container.
type CheckoutState struct {
	Status Status
	Err    string
	Order  api.Order
	Orders []api.Order
	// Paying is set while a payment is being started and stays set once the
	// payment has been handed off to the provider.
	Paying     bool
	PaymentURL string
}

// Checkout holds the current order draft, the user's orders and payment
// progress.
type Checkout struct {
	tracker
	client     CheckoutAPI
	order      api.Order
	orders     []api.Order
	paying     bool
	paymentURL string
}

// NewCheckout creates a checkout with an empty pending draft.
func NewCheckout(client CheckoutAPI) *Checkout {
	return &Checkout{
		tracker: tracker{name: "order"},
		client:  client,
		order:   api.Order{ID: DraftOrderID, Status: api.OrderPending},
	}
}

// State returns a copy of the checkout state.
func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CheckoutState{
		Status:     c.status,
		Err:        c.errMsg,
		Order:      c.order,
		Orders:     slices.Clone(c.orders),
		Paying:     c.paying,
		PaymentURL: c.paymentURL,
	}
}

// UpdateDeliveryInfo edits the draft's shipping address.
func (c *Checkout) UpdateDeliveryInfo(info api.DeliveryInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.DeliveryInfo = info
}

// UpdateCouponCode edits the draft's coupon code.
func (c *Checkout) UpdateCouponCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.CouponCode = code
}

// PlaceOrder submits the draft's delivery info and coupon code along with
// the buyer's contact details. The placed order becomes current.
func (c *Checkout) PlaceOrder(ctx context.Context, email, firstName, lastName string) (api.Order, error) {
	c.mu.Lock()
	req := api.OrderRequest{
		DeliveryInfo: c.order.DeliveryInfo,
		CouponCode:   c.order.CouponCode,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
	}
	c.mu.Unlock()

	ticket := c.begin()
	order, err := c.client.PlaceOrder(ctx, req)
	ok, err := c.finish(ctx, ticket, "place", err)
	if !ok {
		return api.Order{}, err
	}
	defer c.mu.Unlock()
	if order.Status == "" {
		order.Status = api.OrderPending
	}
	if order.DeliveryInfo == (api.DeliveryInfo{}) {
		order.DeliveryInfo = req.DeliveryInfo
	}
	c.order = order
	c.paying = false
	c.paymentURL = ""
	return order, nil
}

// FetchOrders loads the user's orders. When nothing was placed in this
// session the first returned order becomes current.
func (c *Checkout) FetchOrders(ctx context.Context) error {
	ticket := c.begin()
	orders, err := c.client.Orders(ctx)
	ok, err := c.finish(ctx, ticket, "fetch", err)
	if !ok {
		return err
	}
	defer c.mu.Unlock()
	c.orders = orders
	if c.order.ID == DraftOrderID && len(orders) > 0 {
		c.order = orders[0]
	}
	return nil
}

// SelectOrder makes a fetched order current. It reports false when no
// fetched order has that ID.
func (c *Checkout) SelectOrder(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.orders, func(o api.Order) bool { return o.ID == id })
	if i < 0 {
		return false
	}
	c.order = c.orders[i]
	return true
}

// Pay starts payment of the current order.
func (c *Checkout) Pay(ctx context.Context) (api.PaymentResult, error) {
	c.mu.Lock()
	orderID := c.order.ID
	c.paying = true
	c.mu.Unlock()

	ticket := c.begin()
	res, err := c.client.MakePayment(ctx, orderID)
	ok, err := c.finish(ctx, ticket, "pay for", err)
	if !ok {
		c.mu.Lock()
		if !errors.Is(err, ErrSuperseded) {
			c.paying = false
		}
		c.mu.Unlock()
		return api.PaymentResult{}, err
	}
	defer c.mu.Unlock()
	c.paymentURL = res.URL
	return res, nil
}
