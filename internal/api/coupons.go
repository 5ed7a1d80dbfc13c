package api

import (
	"context"
	"fmt"
)

// Coupons returns every coupon (vendor/admin view).
func (c *Client) Coupons(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	if err := c.get(ctx, "/coupons", nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// MyCoupons returns the coupons created by the current vendor.
func (c *Client) MyCoupons(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	if err := c.get(ctx, "/coupons/mine", nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// CreateCoupon creates a coupon; the server assigns its code.
func (c *Client) CreateCoupon(ctx context.Context, in Coupon) (Coupon, error) {
	var out Coupon
	if err := c.post(ctx, "/coupons", in, &out); err != nil {
		return Coupon{}, err
	}
	return out, nil
}

// UpdateCoupon replaces a coupon.
func (c *Client) UpdateCoupon(ctx context.Context, in Coupon) (Coupon, error) {
	var out Coupon
	if err := c.put(ctx, couponPath(in.ID), in, &out); err != nil {
		return Coupon{}, err
	}
	return out, nil
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id int) error {
	return c.delete(ctx, couponPath(id), nil)
}

func couponPath(id int) string {
	return fmt.Sprintf("/coupons/%d", id)
}
