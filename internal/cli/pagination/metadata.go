package pagination

import "github.com/rshade/storefront/internal/pager"

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta describes one page of totalItems.
func NewPaginationMeta(state pager.PageState, pageSize, totalItems int) PaginationMeta {
	return PaginationMeta{
		CurrentPage: state.Current(),
		PageSize:    pageSize,
		TotalPages:  state.Total(),
		TotalItems:  totalItems,
		HasPrevious: state.HasPrevious(),
		HasNext:     state.HasNext(),
	}
}

// State returns the pager state the metadata describes.
func (m PaginationMeta) State() pager.PageState {
	return pager.NewPageState(m.CurrentPage, m.TotalPages)
}
