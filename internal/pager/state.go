package pager

// PageState is the validated paging position of a list.
// The zero value is an empty list with no renderable pages.
type PageState struct {
	currentPage int
	totalPages  int
}

// NewPageState builds a PageState, clamping out-of-range input.
// A negative total becomes zero. The current page is clamped into
// [1, total]; with zero pages it is kept at 1 so that Current never
// reports an impossible page.
func NewPageState(currentPage, totalPages int) PageState {
	if totalPages < 0 {
		totalPages = 0
	}
	return PageState{
		currentPage: clamp(currentPage, 1, max(totalPages, 1)),
		totalPages:  totalPages,
	}
}

// Current returns the 1-based current page.
func (s PageState) Current() int {
	if s.currentPage < 1 {
		return 1
	}
	return s.currentPage
}

// Total returns the number of pages.
func (s PageState) Total() int {
	return s.totalPages
}

// Empty reports whether no page can be rendered.
func (s PageState) Empty() bool {
	return s.totalPages == 0
}

// HasPrevious reports whether a page exists before the current one.
func (s PageState) HasPrevious() bool {
	return !s.Empty() && s.Current() > 1
}

// HasNext reports whether a page exists after the current one.
func (s PageState) HasNext() bool {
	return !s.Empty() && s.Current() < s.totalPages
}

// WithPage returns a copy moved to page, clamped to the valid range.
func (s PageState) WithPage(page int) PageState {
	return NewPageState(page, s.totalPages)
}

// WithTotal returns a copy with a new page count. The current page is
// re-clamped, so shrinking a list never leaves the state past its end.
func (s PageState) WithTotal(totalPages int) PageState {
	return NewPageState(s.currentPage, totalPages)
}

// TotalPagesFor returns how many pages of pageSize items hold totalItems.
// A non-positive page size yields a single page when there are items.
func TotalPagesFor(totalItems, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
