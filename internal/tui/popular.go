package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/pager"
	"github.com/rshade/storefront/internal/store"
)

const popularCardWidth = 24

//nolint:gochecknoglobals // Styles are immutable values.
var popularCardStyle = BoxStyle.Width(popularCardWidth)

// PopularModel is the "most popular" strip: products ordered by rating and
// shown a window at a time.
type PopularModel struct {
	products []api.Product
	carousel pager.Carousel
}

// NewPopularModel sorts products by rating and shows the first window.
func NewPopularModel(products []api.Product, window int) PopularModel {
	return PopularModel{
		products: store.MostPopular(products),
		carousel: pager.NewCarousel(window),
	}
}

// Init implements tea.Model.
func (m PopularModel) Init() tea.Cmd { return nil }

// Update steps the carousel with ←/h and →/l.
func (m PopularModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyLeft, keyH:
		m.carousel = m.carousel.Left()
	case keyRight, keyL:
		m.carousel = m.carousel.Right(len(m.products))
	case keyQuit, keyCtrlC, keyEsc:
		return m, tea.Quit
	}
	return m, nil
}

// Visible returns the products in the current window.
func (m PopularModel) Visible() []api.Product {
	return pager.Visible(m.products, m.carousel)
}

// View renders the strip.
func (m PopularModel) View() string {
	return RenderPopularStrip(m.products, m.carousel)
}

// RenderPopularStrip renders the products inside the carousel window as
// cards between arrows. Arrows are dimmed when they would not move.
func RenderPopularStrip(products []api.Product, c pager.Carousel) string {
	title := HeaderStyle.Render("MOST POPULAR")
	visible := pager.Visible(products, c)
	if len(visible) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, SubtleStyle.Render("No products yet."))
	}

	cards := make([]string, 0, len(visible)+2) //nolint:mnd // Two arrows.
	cards = append(cards, arrow("‹", c.CanLeft()))
	for _, p := range visible {
		cards = append(cards, renderPopularCard(p))
	}
	cards = append(cards, arrow("›", c.CanRight(len(products))))

	position := SubtleStyle.Render(fmt.Sprintf("%d-%d of %d",
		c.Start()+1, c.Start()+len(visible), len(products)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Center, cards...),
		position,
	)
}

func renderPopularCard(p api.Product) string {
	inner := popularCardWidth - 2*borderPadding
	return popularCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		ValueStyle.Render(truncate(p.Name, inner)),
		InfoStyle.Render(FormatRating(p.AverageRating)),
		FormatPrice(p.Price()),
	))
}

func arrow(glyph string, enabled bool) string {
	style := InfoStyle.Padding(0, 1)
	if !enabled {
		style = SubtleStyle.Padding(0, 1)
	}
	return style.Render(glyph)
}
