package pager

import (
	"strconv"
	"strings"
)

// Window layout constants.
//
// Up to MaxUncollapsed pages are always listed in full. Beyond that the
// window keeps BoundaryCount pages at each end, SiblingCount pages on each
// side of the current page, and the first (or last) EdgeRun pages while the
// current page sits within EdgeRun-1 pages of that end. Every gap between
// shown pages collapses into exactly one ellipsis, even a gap of one page.
const (
	MaxUncollapsed = 5
	BoundaryCount  = 2
	SiblingCount   = 1
	EdgeRun        = 4
)

// EllipsisLabel is the text shown for a collapsed range.
const EllipsisLabel = "…"

// Token is a single rendered unit of a window: a page number or an ellipsis.
// The zero Token is the ellipsis.
type Token struct {
	page int
}

// Ellipsis is the non-selectable placeholder for a collapsed range.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var Ellipsis = Token{}

// PageToken returns the token for a concrete page number.
func PageToken(page int) Token {
	return Token{page: page}
}

// IsEllipsis reports whether t is the collapsed-range placeholder.
func (t Token) IsEllipsis() bool {
	return t.page <= 0
}

// Page returns the page number, or 0 for an ellipsis.
func (t Token) Page() int {
	if t.IsEllipsis() {
		return 0
	}
	return t.page
}

// String renders the token as a button label.
func (t Token) String() string {
	if t.IsEllipsis() {
		return EllipsisLabel
	}
	return strconv.Itoa(t.page)
}

// PageWindow is the ordered sequence of tokens shown for one PageState.
type PageWindow []Token

// Pages returns the concrete page numbers of the window in order.
func (w PageWindow) Pages() []int {
	pages := make([]int, 0, len(w))
	for _, t := range w {
		if !t.IsEllipsis() {
			pages = append(pages, t.page)
		}
	}
	return pages
}

// Contains reports whether page is shown as a concrete token.
func (w PageWindow) Contains(page int) bool {
	for _, t := range w {
		if !t.IsEllipsis() && t.page == page {
			return true
		}
	}
	return false
}

// String joins the token labels with commas, e.g. "1,2,…,4,5,6,…,9,10".
func (w PageWindow) String() string {
	labels := make([]string, len(w))
	for i, t := range w {
		labels[i] = t.String()
	}
	return strings.Join(labels, ",")
}

// Window computes the tokens to display for currentPage of totalPages.
// Out-of-range input is clamped first; zero pages yield an empty window.
func Window(currentPage, totalPages int) PageWindow {
	return NewPageState(currentPage, totalPages).Window()
}

// Window computes the tokens to display for s.
func (s PageState) Window() PageWindow {
	total := s.totalPages
	if total == 0 {
		return PageWindow{}
	}
	if total <= MaxUncollapsed {
		w := make(PageWindow, 0, total)
		for p := 1; p <= total; p++ {
			w = append(w, PageToken(p))
		}
		return w
	}

	current := s.Current()
	shown := make([]bool, total+1)
	mark := func(from, to int) {
		for p := max(from, 1); p <= min(to, total); p++ {
			shown[p] = true
		}
	}

	mark(1, BoundaryCount)
	mark(total-BoundaryCount+1, total)
	mark(current-SiblingCount, current+SiblingCount)
	if current <= EdgeRun-1 {
		mark(1, EdgeRun)
	}
	if current >= total-EdgeRun+2 {
		mark(total-EdgeRun+1, total)
	}

	w := make(PageWindow, 0, 2*BoundaryCount+2*SiblingCount+3)
	last := 0
	for p := 1; p <= total; p++ {
		if !shown[p] {
			continue
		}
		if last > 0 && p > last+1 {
			w = append(w, Ellipsis)
		}
		w = append(w, PageToken(p))
		last = p
	}
	return w
}
