package store

import (
	"cmp"
	"slices"

	"github.com/rshade/storefront/internal/api"
)

// MostPopular returns a copy of products ordered by average rating, best
// first. Ties keep their catalog order.
func MostPopular(products []api.Product) []api.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b api.Product) int {
		return cmp.Compare(b.AverageRating, a.AverageRating)
	})
	return out
}
