package tui

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keyS     = "s"
	keyF     = "f"
	keyR     = "r"
	keyA     = "a"
	keyTab   = "tab"
	keyLeft  = "left"
	keyRight = "right"
	keyH     = "h"
	keyL     = "l"
)

// Layout defaults.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 5
	borderPadding        = 2
	filterInputCharLimit = 64
	filterInputWidth     = 40
	truncateSuffix       = "..."

	msgSelectedOutOfBounds = "Selected item out of bounds"
)

// truncate shortens s to at most n runes, marking the cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= len(truncateSuffix) {
		return string(r[:n])
	}
	return string(r[:n-len(truncateSuffix)]) + truncateSuffix
}
