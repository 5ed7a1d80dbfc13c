package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/pager"
)

// Flag names and validation limits.
const (
	FlagPage     = "page"
	FlagPageSize = "page-size"
	FlagLimit    = "limit"
	FlagOffset   = "offset"
	FlagSort     = "sort"

	MaxLimit         = 10000
	MaxPageSize      = 100
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Validation errors.
var (
	ErrNegativeValue        = errors.New("pagination values cannot be negative")
	ErrInvalidLimit         = errors.New("limit must be between 1 and 10000")
	ErrInvalidPageSize      = errors.New("page-size must be between 1 and 100")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset/--limit) and page-based (--page) pagination")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page to be set")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField     = errors.New("invalid sort field")
)

// PaginationParams holds the list flags of a command.
// Two modes are supported:
//   - Page-based: --page and --page-size (page size falls back to the
//     configured default)
//   - Offset-based: --limit and --offset
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	Page     int
	PageSize int
	Limit    int
	Offset   int
	// Sort is the raw --sort value, "field" or "field:order".
	Sort string
}

// AddFlags registers the pagination flags on cmd, bound to p.
func (p *PaginationParams) AddFlags(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().IntVar(&p.Page, FlagPage, 0, "page number to show (1-based)")
	cmd.Flags().IntVar(&p.PageSize, FlagPageSize, 0, "items per page (defaults to catalog.page_size)")
	cmd.Flags().IntVar(&p.Limit, FlagLimit, 0, "maximum number of items to show")
	cmd.Flags().IntVar(&p.Offset, FlagOffset, 0, "number of items to skip")
	cmd.Flags().StringVar(&p.Sort, FlagSort, "", sortHelp)
}

// Validate checks bounds and mode exclusivity.
func (p PaginationParams) Validate() error {
	if p.Page < 0 || p.PageSize < 0 || p.Limit < 0 || p.Offset < 0 {
		return ErrNegativeValue
	}
	if p.Page > 0 && (p.Offset > 0 || p.Limit > 0) {
		return ErrMixedPaginationModes
	}
	if p.PageSize > 0 && p.Page == 0 {
		return ErrPageSizeWithoutPage
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if _, _, err := ParseSort(p.Sort); err != nil {
		return err
	}
	return nil
}

// IsPageBased reports whether --page was given.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any pagination flag was given.
func (p PaginationParams) IsEnabled() bool {
	return p.Page > 0 || p.Limit > 0 || p.Offset > 0
}

// EffectivePageSize returns --page-size or defaultSize when unset.
func (p PaginationParams) EffectivePageSize(defaultSize int) int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return defaultSize
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order". An empty string yields an
// empty field, meaning server order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// Apply returns the part of items selected by p, together with its
// metadata. Without any pagination flag every item is returned as a single
// page. Page numbers outside the list are clamped to the nearest page.
func Apply[T any](p PaginationParams, items []T, defaultPageSize int) ([]T, PaginationMeta) {
	if p.IsPageBased() {
		size := p.EffectivePageSize(defaultPageSize)
		pageItems, state := pager.Slice(items, p.Page, size)
		return pageItems, NewPaginationMeta(state, size, len(items))
	}

	offset := min(p.Offset, len(items))
	end := len(items)
	if p.Limit > 0 {
		end = min(offset+p.Limit, len(items))
	}

	size := p.Limit
	if size == 0 {
		size = len(items)
	}
	current := 1
	if size > 0 {
		current = offset/size + 1
	}
	state := pager.NewPageState(current, pager.TotalPagesFor(len(items), size))
	return items[offset:end], NewPaginationMeta(state, size, len(items))
}
