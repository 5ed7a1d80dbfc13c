package store_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/store"
)

func newCoupons() *store.Collection[api.Coupon] {
	return store.NewCollection("coupons", func(c api.Coupon) int { return c.ID })
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", store.StatusIdle.String())
	assert.Equal(t, "loading", store.StatusLoading.String())
	assert.Equal(t, "succeeded", store.StatusSucceeded.String())
	assert.Equal(t, "failed", store.StatusFailed.String())
	assert.Equal(t, "Status(9)", store.Status(9).String())
}

func TestCollection_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()
	assert.Equal(t, store.StatusIdle, c.Status())

	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		assert.Equal(t, store.StatusLoading, c.Status(), "loading while the request is in flight")
		return []api.Coupon{{ID: 1, Code: "TEST"}, {ID: 2, Code: "MORE"}}, nil
	}))
	snap := c.Snapshot()
	assert.Equal(t, store.StatusSucceeded, snap.Status)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, 2, snap.Total)

	created, err := c.Create(ctx, func(context.Context) (api.Coupon, error) {
		return api.Coupon{ID: 3, Code: "NEW"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	_, err = c.Update(ctx, func(context.Context) (api.Coupon, error) {
		return api.Coupon{ID: 1, Code: "EDITED"}, nil
	})
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, 2, func(context.Context) error { return nil }))

	snap = c.Snapshot()
	assert.Equal(t, []api.Coupon{{ID: 1, Code: "EDITED"}, {ID: 3, Code: "NEW"}}, snap.Items)
	assert.Equal(t, 2, snap.Total)
}

func TestCollection_FailureMessages(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()

	err := c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return nil, errors.New("connection refused")
	})
	require.Error(t, err)
	snap := c.Snapshot()
	assert.Equal(t, store.StatusFailed, snap.Status)
	assert.Equal(t, "Failed to fetch coupons", snap.Err)

	err = c.Delete(ctx, 1, func(context.Context) error {
		return &api.APIError{StatusCode: 403, Message: "Not your coupon"}
	})
	require.Error(t, err)
	assert.Equal(t, "Not your coupon", c.Snapshot().Err)

	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) { return nil, nil }))
	assert.Empty(t, c.Snapshot().Err, "a new request clears the previous error")
}

func TestCollection_FailedMutationKeepsItems(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()
	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return []api.Coupon{{ID: 1}}, nil
	}))

	_, err := c.Create(ctx, func(context.Context) (api.Coupon, error) {
		return api.Coupon{}, errors.New("boom")
	})
	require.Error(t, err)
	assert.Len(t, c.Snapshot().Items, 1)
}

func TestCollection_LastResponseWins(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = c.FetchPage(ctx, func(context.Context) ([]api.Coupon, int, error) {
			close(slowStarted)
			<-releaseSlow
			return []api.Coupon{{ID: 1, Code: "PAGE1"}}, 40, nil
		})
	}()

	<-slowStarted
	require.NoError(t, c.FetchPage(ctx, func(context.Context) ([]api.Coupon, int, error) {
		return []api.Coupon{{ID: 2, Code: "PAGE2"}}, 40, nil
	}))
	close(releaseSlow)
	wg.Wait()

	require.ErrorIs(t, slowErr, store.ErrSuperseded)
	snap := c.Snapshot()
	assert.Equal(t, store.StatusSucceeded, snap.Status)
	assert.Equal(t, []api.Coupon{{ID: 2, Code: "PAGE2"}}, snap.Items)
	assert.Equal(t, 40, snap.Total)
}

func TestCollection_UpdateWith(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()
	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return []api.Coupon{{ID: 1, Code: "A"}, {ID: 2, Code: "B"}}, nil
	}))

	dropB := func(items []api.Coupon) []api.Coupon {
		return slices.DeleteFunc(items, func(cp api.Coupon) bool { return cp.Code == "B" })
	}

	_, err := c.UpdateWith(ctx, func(context.Context) (api.Coupon, error) {
		return api.Coupon{ID: 3, Code: "C"}, nil
	}, dropB)
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Equal(t, []api.Coupon{{ID: 1, Code: "A"}, {ID: 3, Code: "C"}}, snap.Items)
	assert.Equal(t, 2, snap.Total)
}

func TestCollection_UpdateWithSkipsPostWhenSuperseded(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	postCalls := 0
	go func() {
		_, err := c.UpdateWith(ctx, func(context.Context) (api.Coupon, error) {
			close(started)
			<-release
			return api.Coupon{ID: 9, Code: "LATE"}, nil
		}, func([]api.Coupon) []api.Coupon {
			postCalls++
			return nil
		})
		done <- err
	}()

	<-started
	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return []api.Coupon{{ID: 1, Code: "FRESH"}}, nil
	}))
	close(release)

	require.ErrorIs(t, <-done, store.ErrSuperseded)
	assert.Zero(t, postCalls)
	assert.Equal(t, []api.Coupon{{ID: 1, Code: "FRESH"}}, c.Snapshot().Items)
}

func TestCollection_StaleFailureIgnored(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
			close(started)
			<-release
			return nil, errors.New("late failure")
		})
	}()

	<-started
	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return []api.Coupon{{ID: 5}}, nil
	}))
	close(release)

	require.ErrorIs(t, <-done, store.ErrSuperseded)
	snap := c.Snapshot()
	assert.Equal(t, store.StatusSucceeded, snap.Status)
	assert.Empty(t, snap.Err)
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	c := newCoupons()
	require.NoError(t, c.Fetch(ctx, func(context.Context) ([]api.Coupon, error) {
		return []api.Coupon{{ID: 1, Code: "A"}}, nil
	}))

	snap := c.Snapshot()
	snap.Items[0].Code = "mutated"
	assert.Equal(t, "A", c.Snapshot().Items[0].Code)
	assert.False(t, snap.Loading())
}
