package pager

// Slice returns the items on page (1-based) of size pageSize together with
// the clamped PageState. A page past the end is clamped to the last page, a
// page before the start to the first. A non-positive size puts every item
// on a single page.
func Slice[T any](items []T, page, pageSize int) ([]T, PageState) {
	state := NewPageState(page, TotalPagesFor(len(items), pageSize))
	if state.Empty() {
		return []T{}, state
	}
	if pageSize <= 0 {
		return items, state
	}

	start := (state.Current() - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end], state
}
