package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/store"
)

type fakeCheckoutAPI struct {
	placed    api.OrderRequest
	orders    []api.Order
	payErr    error
	placeErr  error
	paidOrder int
}

func (f *fakeCheckoutAPI) PlaceOrder(_ context.Context, req api.OrderRequest) (api.Order, error) {
	f.placed = req
	if f.placeErr != nil {
		return api.Order{}, f.placeErr
	}
	return api.Order{ID: 31, TrackingNumber: "Tr280585"}, nil
}

func (f *fakeCheckoutAPI) Orders(context.Context) ([]api.Order, error) {
	return f.orders, nil
}

func (f *fakeCheckoutAPI) MakePayment(_ context.Context, orderID int) (api.PaymentResult, error) {
	f.paidOrder = orderID
	if f.payErr != nil {
		return api.PaymentResult{}, f.payErr
	}
	return api.PaymentResult{Success: true, URL: "https://pay.example.com/s/1"}, nil
}

func TestCheckout_InitialDraft(t *testing.T) {
	c := store.NewCheckout(&fakeCheckoutAPI{})
	state := c.State()
	assert.Equal(t, store.DraftOrderID, state.Order.ID)
	assert.Equal(t, api.OrderPending, state.Order.Status)
	assert.Equal(t, store.StatusIdle, state.Status)
	assert.False(t, state.Paying)
}

func TestCheckout_PlaceAndPay(t *testing.T) {
	ctx := context.Background()
	fake := &fakeCheckoutAPI{}
	c := store.NewCheckout(fake)

	info := api.DeliveryInfo{Address: "123 Main St", City: "Anytown", Zip: "12345"}
	c.UpdateDeliveryInfo(info)
	c.UpdateCouponCode("SUMMER")

	order, err := c.PlaceOrder(ctx, "buyer@example.com", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, info, fake.placed.DeliveryInfo)
	assert.Equal(t, "SUMMER", fake.placed.CouponCode)
	assert.Equal(t, "buyer@example.com", fake.placed.Email)
	assert.Equal(t, api.OrderPending, order.Status, "missing status defaults to pending")
	assert.Equal(t, info, order.DeliveryInfo, "missing delivery info is taken from the draft")

	res, err := c.Pay(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 31, fake.paidOrder)

	state := c.State()
	assert.True(t, state.Paying)
	assert.Equal(t, "https://pay.example.com/s/1", state.PaymentURL)
}

func TestCheckout_PayFailureResetsPaying(t *testing.T) {
	fake := &fakeCheckoutAPI{payErr: &api.APIError{StatusCode: 402, Message: "Card declined"}}
	c := store.NewCheckout(fake)

	_, err := c.Pay(context.Background())
	require.Error(t, err)
	state := c.State()
	assert.False(t, state.Paying)
	assert.Equal(t, store.StatusFailed, state.Status)
	assert.Equal(t, "Card declined", state.Err)
}

func TestCheckout_PlaceFailure(t *testing.T) {
	c := store.NewCheckout(&fakeCheckoutAPI{placeErr: errors.New("timeout")})

	_, err := c.PlaceOrder(context.Background(), "", "", "")
	require.Error(t, err)
	state := c.State()
	assert.Equal(t, "Failed to place order", state.Err)
	assert.Equal(t, store.DraftOrderID, state.Order.ID)
}

func TestCheckout_FetchOrders(t *testing.T) {
	ctx := context.Background()
	fake := &fakeCheckoutAPI{orders: []api.Order{
		{ID: 7, Status: api.OrderCompleted},
		{ID: 8, Status: api.OrderPending},
	}}
	c := store.NewCheckout(fake)

	require.NoError(t, c.FetchOrders(ctx))
	state := c.State()
	assert.Len(t, state.Orders, 2)
	assert.Equal(t, 7, state.Order.ID, "first order becomes current when nothing was placed")

	_, err := c.PlaceOrder(ctx, "", "", "")
	require.NoError(t, err)
	require.NoError(t, c.FetchOrders(ctx))
	assert.Equal(t, 31, c.State().Order.ID, "placed order stays current")
}

func TestCheckout_SelectOrderThenPay(t *testing.T) {
	ctx := context.Background()
	fake := &fakeCheckoutAPI{orders: []api.Order{
		{ID: 7, TrackingNumber: "Tr7", Status: api.OrderPending},
		{ID: 9, TrackingNumber: "Tr9", Status: api.OrderPending},
	}}
	c := store.NewCheckout(fake)

	assert.False(t, c.SelectOrder(9), "nothing fetched yet")
	require.NoError(t, c.FetchOrders(ctx))
	require.True(t, c.SelectOrder(9))
	assert.Equal(t, "Tr9", c.State().Order.TrackingNumber)
	assert.False(t, c.SelectOrder(404))

	_, err := c.Pay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, fake.paidOrder)
}
