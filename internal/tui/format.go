package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// priceFormatter formats money with thousands separators.
//
//nolint:gochecknoglobals // message.Printer is safe for concurrent use and costly to build.
var priceFormatter = message.NewPrinter(language.English)

// FormatPrice renders an amount as "$1,234.50".
func FormatPrice(amount float64) string {
	if amount < 0 {
		return priceFormatter.Sprintf("-$%.2f", -amount)
	}
	return priceFormatter.Sprintf("$%.2f", amount)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return priceFormatter.Sprintf("%d", n)
}

// FormatRating renders an average rating as "★ 4.5".
func FormatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return priceFormatter.Sprintf("★ %.1f", rating)
}
