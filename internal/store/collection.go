package store

import (
	"context"
	"slices"
)

// Snapshot is a consistent copy of a collection's state.
type Snapshot[T any] struct {
	Status Status
	Err    string
	Items  []T
	// Total is the server-side item count for paged fetches, or len(Items).
	Total int
}

// Loading reports whether a request is in flight.
func (s Snapshot[T]) Loading() bool {
	return s.Status == StatusLoading
}

// Collection is a request-state container for a list resource keyed by an
// integer ID.
type Collection[T any] struct {
	tracker
	id    func(T) int
	items []T
	total int
}

// NewCollection creates a collection named after its resource (used in
// fallback error messages, e.g. "Failed to fetch coupons").
func NewCollection[T any](name string, id func(T) int) *Collection[T] {
	return &Collection[T]{
		tracker: tracker{name: name},
		id:      id,
	}
}

// Snapshot returns a copy of the current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		Status: c.status,
		Err:    c.errMsg,
		Items:  slices.Clone(c.items),
		Total:  c.total,
	}
}

// Status returns the status of the latest request.
func (c *Collection[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Fetch replaces the items with the result of fn.
func (c *Collection[T]) Fetch(ctx context.Context, fn func(context.Context) ([]T, error)) error {
	return c.FetchPage(ctx, func(ctx context.Context) ([]T, int, error) {
		items, err := fn(ctx)
		return items, len(items), err
	})
}

// FetchPage replaces the items with one page returned by fn, together with
// the server-side total.
func (c *Collection[T]) FetchPage(ctx context.Context, fn func(context.Context) ([]T, int, error)) error {
	ticket := c.begin()
	items, total, err := fn(ctx)
	ok, err := c.finish(ctx, ticket, "fetch", err)
	if !ok {
		return err
	}
	defer c.mu.Unlock()
	c.items = items
	c.total = total
	return nil
}

// Create appends the item returned by fn.
func (c *Collection[T]) Create(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ticket := c.begin()
	item, err := fn(ctx)
	ok, err := c.finish(ctx, ticket, "create", err)
	if !ok {
		var zero T
		return zero, err
	}
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.total++
	return item, nil
}

// Update replaces the item with the same ID as the one returned by fn, or
// appends it when no such item is held.
func (c *Collection[T]) Update(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return c.UpdateWith(ctx, fn, nil)
}

// UpdateWith is Update followed by post, which rewrites the held items
// under the same lock. post is skipped when the response is stale or fn
// fails.
func (c *Collection[T]) UpdateWith(
	ctx context.Context,
	fn func(context.Context) (T, error),
	post func([]T) []T,
) (T, error) {
	ticket := c.begin()
	item, err := fn(ctx)
	ok, err := c.finish(ctx, ticket, "update", err)
	if !ok {
		var zero T
		return zero, err
	}
	defer c.mu.Unlock()
	c.replace(item)
	if post != nil {
		before := len(c.items)
		c.items = post(c.items)
		c.total += len(c.items) - before
	}
	return item, nil
}

// Delete removes the item with the given ID once fn succeeds.
func (c *Collection[T]) Delete(ctx context.Context, id int, fn func(context.Context) error) error {
	ticket := c.begin()
	err := fn(ctx)
	ok, err := c.finish(ctx, ticket, "delete", err)
	if !ok {
		return err
	}
	defer c.mu.Unlock()
	c.remove(id)
	return nil
}

func (c *Collection[T]) index(id int) int {
	return slices.IndexFunc(c.items, func(item T) bool { return c.id(item) == id })
}

func (c *Collection[T]) replace(item T) {
	if i := c.index(c.id(item)); i >= 0 {
		c.items[i] = item
		return
	}
	c.items = append(c.items, item)
	c.total++
}

func (c *Collection[T]) remove(id int) {
	if i := c.index(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
		c.total--
	}
}
