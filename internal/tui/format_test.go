package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "$0.00"},
		{amount: 9.5, want: "$9.50"},
		{amount: 1234.567, want: "$1,234.57"},
		{amount: 1000000, want: "$1,000,000.00"},
		{amount: -12.3, want: "-$12.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}

func TestFormatCountAndRating(t *testing.T) {
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, "★ 4.5", FormatRating(4.5))
	assert.Equal(t, "-", FormatRating(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long ...", truncate("a long product name", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "héllo", truncate("héllo", 5), "counts runes, not bytes")
}

func TestViewStateString(t *testing.T) {
	assert.Equal(t, "loading", ViewStateLoading.String())
	assert.Equal(t, "list", ViewStateList.String())
	assert.Equal(t, "detail", ViewStateDetail.String())
	assert.Equal(t, "error", ViewStateError.String())
	assert.Equal(t, "quitting", ViewStateQuitting.String())
	assert.Equal(t, "unknown", ViewState(42).String())
}

func TestRenderLoading(t *testing.T) {
	assert.Equal(t, "Loading...", RenderLoading(nil))

	l := NewLoadingState()
	l.SetMessage("Loading page 3...")
	assert.Contains(t, RenderLoading(l), "Loading page 3...")
}
