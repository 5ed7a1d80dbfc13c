package api

import (
	"context"
	"errors"
	"fmt"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidReview is returned before any request for a malformed review.
var ErrInvalidReview = errors.New("invalid review")

// AddReview posts a review for a product.
func (c *Client) AddReview(ctx context.Context, r Review) (Review, error) {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return Review{}, fmt.Errorf("%w: rating must be %d-%d, got %d", ErrInvalidReview, MinRating, MaxRating, r.Rating)
	}
	if r.ProductID <= 0 {
		return Review{}, fmt.Errorf("%w: product id is required", ErrInvalidReview)
	}

	var env Envelope[Review]
	if err := c.post(ctx, "/review", r, &env); err != nil {
		return Review{}, err
	}
	if env.Data.ProductID == 0 {
		return r, nil
	}
	return env.Data, nil
}
