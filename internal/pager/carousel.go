package pager

// DefaultCarouselSize is how many items a carousel shows at once.
const DefaultCarouselSize = 3

// Carousel is a fixed-size window that steps through a list a whole window
// at a time, as the "most popular" strip does. It is a value: the owner
// keeps it and replaces it with the result of Left or Right.
type Carousel struct {
	start int
	size  int
}

// NewCarousel returns a carousel at the start of the list showing size
// items. A non-positive size falls back to DefaultCarouselSize.
func NewCarousel(size int) Carousel {
	if size <= 0 {
		size = DefaultCarouselSize
	}
	return Carousel{size: size}
}

// Start returns the index of the first visible item.
func (c Carousel) Start() int {
	return c.start
}

// Size returns the window size.
func (c Carousel) Size() int {
	if c.size <= 0 {
		return DefaultCarouselSize
	}
	return c.size
}

// Left steps back one window. At the start it stays at the start.
func (c Carousel) Left() Carousel {
	size := c.Size()
	if c.start > 0 {
		return Carousel{start: max(c.start-size, 0), size: size}
	}
	return Carousel{size: size}
}

// Right steps forward one window when items remain past the current one.
func (c Carousel) Right(count int) Carousel {
	size := c.Size()
	if c.start+size < count {
		return Carousel{start: c.start + size, size: size}
	}
	return Carousel{start: c.start, size: size}
}

// CanLeft reports whether Left would move.
func (c Carousel) CanLeft() bool {
	return c.start > 0
}

// CanRight reports whether Right would move for a list of count items.
func (c Carousel) CanRight(count int) bool {
	return c.start+c.Size() < count
}

// Visible returns the items inside the carousel window.
func Visible[T any](items []T, c Carousel) []T {
	from := min(c.start, len(items))
	to := min(from+c.Size(), len(items))
	return items[from:to]
}
