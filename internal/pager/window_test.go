package pager_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/pager"
)

func TestWindow_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "five pages from the start", current: 1, total: 5, want: "1,2,3,4,5"},
		{name: "five pages at the end", current: 5, total: 5, want: "1,2,3,4,5"},
		{name: "single page", current: 1, total: 1, want: "1"},
		{name: "ten pages at first", current: 1, total: 10, want: "1,2,3,4,…,9,10"},
		{name: "ten pages at second", current: 2, total: 10, want: "1,2,3,4,…,9,10"},
		{name: "ten pages at third", current: 3, total: 10, want: "1,2,3,4,…,9,10"},
		{name: "ten pages at fourth", current: 4, total: 10, want: "1,2,3,4,5,…,9,10"},
		{name: "ten pages in the middle", current: 5, total: 10, want: "1,2,…,4,5,6,…,9,10"},
		{name: "ten pages at eighth", current: 8, total: 10, want: "1,2,…,7,8,9,10"},
		{name: "ten pages at last", current: 10, total: 10, want: "1,2,…,7,8,9,10"},
		{name: "six pages fully listed from start", current: 1, total: 6, want: "1,2,3,4,5,6"},
		{name: "seven pages in the middle", current: 4, total: 7, want: "1,2,3,4,5,6,7"},
		{name: "hundred pages in the middle", current: 50, total: 100, want: "1,2,…,49,50,51,…,99,100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pager.Window(tt.current, tt.total)
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("Window(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.total, diff)
			}
		})
	}
}

func TestWindow_Clamping(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "zero current clamps to first", current: 0, total: 10, want: "1,2,3,4,…,9,10"},
		{name: "negative current clamps to first", current: -7, total: 10, want: "1,2,3,4,…,9,10"},
		{name: "current past end clamps to last", current: 42, total: 10, want: "1,2,…,7,8,9,10"},
		{name: "zero pages", current: 1, total: 0, want: ""},
		{name: "negative pages", current: 3, total: -4, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pager.Window(tt.current, tt.total).String())
		})
	}
}

func TestWindow_Properties(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for current := -2; current <= total+2; current++ {
			w := pager.Window(current, total)

			if total == 0 {
				assert.Empty(t, w)
				continue
			}

			if total <= pager.MaxUncollapsed {
				want := make([]int, 0, total)
				for p := 1; p <= total; p++ {
					want = append(want, p)
				}
				assert.Equal(t, want, w.Pages(), "total=%d current=%d", total, current)
				assert.Len(t, w, total, "no ellipsis expected for total=%d", total)
			}

			require.NotEmpty(t, w)
			assert.False(t, w[0].IsEllipsis(), "window must start with a page: %s", w)
			assert.False(t, w[len(w)-1].IsEllipsis(), "window must end with a page: %s", w)
			assert.True(t, w.Contains(1), "first page missing: %s", w)
			assert.True(t, w.Contains(total), "last page missing: %s", w)

			clamped := pager.NewPageState(current, total).Current()
			assert.True(t, w.Contains(clamped), "current page %d missing: %s", clamped, w)

			prev := 0
			for i, tok := range w {
				if tok.IsEllipsis() {
					require.Positive(t, i)
					assert.False(t, w[i-1].IsEllipsis(), "adjacent ellipses in %s", w)
					continue
				}
				assert.GreaterOrEqual(t, tok.Page(), 1)
				assert.LessOrEqual(t, tok.Page(), total)
				assert.Greater(t, tok.Page(), prev, "pages not strictly ascending in %s", w)
				prev = tok.Page()
			}
		}
	}
}

func TestWindow_Deterministic(t *testing.T) {
	first := pager.Window(6, 20)
	second := pager.Window(6, 20)
	assert.Equal(t, first, second)
}

func TestToken(t *testing.T) {
	assert.True(t, pager.Ellipsis.IsEllipsis())
	assert.Equal(t, 0, pager.Ellipsis.Page())
	assert.Equal(t, "…", pager.Ellipsis.String())

	tok := pager.PageToken(7)
	assert.False(t, tok.IsEllipsis())
	assert.Equal(t, 7, tok.Page())
	assert.Equal(t, "7", tok.String())
}
