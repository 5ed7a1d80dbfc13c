package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/tui/pagerview"
)

// drain runs cmd and every command it batches, returning the messages the
// views react to. Spinner and cursor ticks are dropped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case shopPageMsg, ordersLoadedMsg, cartAddedMsg, pagerview.PageRequestedMsg, tea.QuitMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func makeProducts(n, offset int) []api.Product {
	out := make([]api.Product, n)
	for i := range out {
		id := offset + i + 1
		out[i] = api.Product{
			ID:            id,
			Name:          fmt.Sprintf("Product %d", id),
			Quantity:      10,
			RegularPrice:  float64(id) * 10,
			AverageRating: float64(id%5) + 0.5,
			IsAvailable:   true,
		}
	}
	return out
}
