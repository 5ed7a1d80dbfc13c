package pager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/storefront/internal/pager"
)

func TestNewPageState(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		total       int
		wantCurrent int
		wantTotal   int
		wantPrev    bool
		wantNext    bool
	}{
		{name: "first of many", current: 1, total: 10, wantCurrent: 1, wantTotal: 10, wantNext: true},
		{name: "middle", current: 5, total: 10, wantCurrent: 5, wantTotal: 10, wantPrev: true, wantNext: true},
		{name: "last", current: 10, total: 10, wantCurrent: 10, wantTotal: 10, wantPrev: true},
		{name: "single page", current: 1, total: 1, wantCurrent: 1, wantTotal: 1},
		{name: "zero current", current: 0, total: 3, wantCurrent: 1, wantTotal: 3, wantNext: true},
		{name: "past end", current: 8, total: 3, wantCurrent: 3, wantTotal: 3, wantPrev: true},
		{name: "empty", current: 4, total: 0, wantCurrent: 1, wantTotal: 0},
		{name: "negative total", current: 1, total: -1, wantCurrent: 1, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pager.NewPageState(tt.current, tt.total)
			assert.Equal(t, tt.wantCurrent, s.Current())
			assert.Equal(t, tt.wantTotal, s.Total())
			assert.Equal(t, tt.wantPrev, s.HasPrevious())
			assert.Equal(t, tt.wantNext, s.HasNext())
			assert.Equal(t, tt.wantTotal == 0, s.Empty())
		})
	}
}

func TestPageState_Zero(t *testing.T) {
	var s pager.PageState
	assert.True(t, s.Empty())
	assert.Equal(t, 1, s.Current())
	assert.Empty(t, s.Window())
}

func TestPageState_WithPageAndTotal(t *testing.T) {
	s := pager.NewPageState(4, 6)

	assert.Equal(t, 5, s.WithPage(5).Current())
	assert.Equal(t, 6, s.WithPage(60).Current())
	assert.Equal(t, 2, s.WithTotal(2).Current(), "shrinking re-clamps the current page")
	assert.Equal(t, 4, s.WithTotal(20).Current())
	assert.Equal(t, 4, s.Current(), "receiver is unchanged")
}

func TestTotalPagesFor(t *testing.T) {
	tests := []struct {
		items, size, want int
	}{
		{items: 0, size: 10, want: 0},
		{items: 1, size: 10, want: 1},
		{items: 10, size: 10, want: 1},
		{items: 11, size: 10, want: 2},
		{items: 15, size: 5, want: 3},
		{items: 7, size: 0, want: 1},
		{items: -3, size: 5, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pager.TotalPagesFor(tt.items, tt.size), "items=%d size=%d", tt.items, tt.size)
	}
}
