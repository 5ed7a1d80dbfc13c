package pagination

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/rshade/storefront/internal/api"
)

// Sorter sorts items of type T by a named field.
type Sorter[T any] struct {
	less map[string]func(a, b T) int
}

// IsValidField checks if the field is valid for sorting.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.less[field]
	return ok
}

// GetValidFields returns all valid sort fields in a consistent order.
func (s *Sorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.less))
	for field := range s.less {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Help returns the --sort flag usage listing the valid fields.
func (s *Sorter[T]) Help() string {
	return fmt.Sprintf("sort by field[:asc|desc], fields: %s", strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a stably sorted copy of items. An empty field returns items
// unchanged; an unknown field is an error.
func (s *Sorter[T]) Sort(items []T, field, order string) ([]T, error) {
	if field == "" {
		return items, nil
	}
	compare, ok := s.less[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == SortOrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted, nil
}

// SortExpr parses a "field:order" expression and sorts items with it.
func (s *Sorter[T]) SortExpr(items []T, expr string) ([]T, error) {
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	return s.Sort(items, field, order)
}

// NewProductSorter sorts products by price, rating, name, stock or newest.
func NewProductSorter() *Sorter[api.Product] {
	return &Sorter[api.Product]{less: map[string]func(a, b api.Product) int{
		"price": func(a, b api.Product) int { return cmp.Compare(a.Price(), b.Price()) },
		"rating": func(a, b api.Product) int {
			return cmp.Compare(a.AverageRating, b.AverageRating)
		},
		"name": func(a, b api.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		},
		"stock":  func(a, b api.Product) int { return cmp.Compare(a.Quantity, b.Quantity) },
		"newest": func(a, b api.Product) int { return b.CreatedAt.Compare(a.CreatedAt) },
	}}
}

// NewOrderSorter sorts orders by tracking number, update time, status or
// total amount.
func NewOrderSorter() *Sorter[api.Order] {
	return &Sorter[api.Order]{less: map[string]func(a, b api.Order) int{
		"tracking": func(a, b api.Order) int { return cmp.Compare(a.TrackingNumber, b.TrackingNumber) },
		"updated":  func(a, b api.Order) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
		"status":   func(a, b api.Order) int { return cmp.Compare(a.Status, b.Status) },
		"total":    func(a, b api.Order) int { return cmp.Compare(a.TotalAmount, b.TotalAmount) },
	}}
}
