package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/pager"
	listview "github.com/rshade/storefront/internal/tui/list"
	"github.com/rshade/storefront/internal/tui/pagerview"
)

const (
	// shopChromeHeight is the space taken by everything but the rows.
	shopChromeHeight = 8

	shopColWidthName     = 36
	shopColWidthCategory = 16
	shopColWidthPrice    = 12
	shopColWidthRating   = 7
	shopColWidthStock    = 6
)

// ProductFetcher loads one page of products matching keyword.
type ProductFetcher func(ctx context.Context, page int, keyword string) (api.ProductPage, error)

// CartAdder puts quantity units of a product in the cart.
type CartAdder func(ctx context.Context, productID, quantity int) error

type shopPageMsg struct {
	seq    uint64
	page   int
	result api.ProductPage
	err    error
}

type cartAddedMsg struct {
	name string
	err  error
}

// ShopModel is the interactive product browser. Each page request triggers
// a fetch of that page; the pager only moves once the page has arrived.
type ShopModel struct {
	ctx       context.Context
	fetch     ProductFetcher
	addToCart CartAdder
	pageSize  int

	state    ViewState
	products []api.Product
	list     *listview.Model[api.Product]
	pager    pagerview.Model
	search   textinput.Model
	loading  *LoadingState

	showSearch   bool
	pagerFocused bool
	keyword      string
	requested    int
	seq          uint64

	width  int
	height int
	notice string
	err    error
}

// NewShopModel creates a browser that starts loading the first page.
func NewShopModel(ctx context.Context, fetch ProductFetcher, pageSize int) *ShopModel {
	m := &ShopModel{
		ctx:       ctx,
		fetch:     fetch,
		pageSize:  max(pageSize, 1),
		state:     ViewStateLoading,
		pager:     pagerview.New(1, 0),
		search:    newSearchInput(),
		loading:   NewLoadingState(),
		requested: 1,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.list = listview.New[api.Product](nil, m.listHeight(), renderProductRow)
	return m
}

// SetCartAdder enables the add-to-cart key.
func (m *ShopModel) SetCartAdder(add CartAdder) {
	m.addToCart = add
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init starts the first fetch.
func (m *ShopModel) Init() tea.Cmd {
	return m.load(m.requested)
}

// load issues a fetch for page and restarts the spinner. Responses to older
// fetches are dropped.
func (m *ShopModel) load(page int) tea.Cmd {
	m.seq++
	m.requested = page
	m.state = ViewStateLoading
	m.loading.SetMessage(fmt.Sprintf("Loading page %d...", page))

	seq, ctx, fetch, keyword := m.seq, m.ctx, m.fetch, m.keyword
	logging.FromContext(ctx).Debug().
		Str("component", "tui").
		Int("page", page).
		Str("keyword", keyword).
		Msg("fetching product page")
	return tea.Batch(m.loading.Init(), func() tea.Msg {
		result, err := fetch(ctx, page, keyword)
		return shopPageMsg{seq: seq, page: page, result: result, err: err}
	})
}

// Update handles messages and updates the model state.
func (m *ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetHeight(m.listHeight())
		return m, nil
	case shopPageMsg:
		return m.handlePage(msg)
	case pagerview.PageRequestedMsg:
		return m, m.load(msg.Page)
	case cartAddedMsg:
		m.notice = cartNotice(msg)
		return m, nil
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *ShopModel) handlePage(msg shopPageMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		m.err = msg.err
		m.state = ViewStateError
		return m, nil
	}

	m.err = nil
	m.products = msg.result.Items
	m.list.SetItems(m.products)
	m.pager = m.pager.
		SetTotal(pager.TotalPagesFor(msg.result.Total, m.pageSize)).
		SetPage(msg.page)
	m.state = ViewStateList
	return m, nil
}

func (m *ShopModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.showSearch = false
			m.search.Blur()
			m.keyword = strings.TrimSpace(m.search.Value())
			return m, m.load(1)
		case keyEsc:
			m.showSearch = false
			m.search.Blur()
			m.search.SetValue(m.keyword)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *ShopModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.pagerFocused {
		return m.handlePagerKey(keyMsg)
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.showSearch = true
		m.search.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.keyword != "" {
			m.keyword = ""
			m.search.SetValue("")
			return m, m.load(1)
		}
		return m, nil
	case keyTab:
		m.pagerFocused = true
		m.pager = m.pager.Focus()
		return m, nil
	case keyA:
		return m, m.addSelected()
	case keyEnter:
		if _, ok := m.list.SelectedItem(); ok {
			m.state = ViewStateDetail
		}
		return m, nil
	}

	if isPagerKey(keyMsg) {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(keyMsg)
		return m, cmd
	}
	_, cmd := m.list.Update(keyMsg)
	return m, cmd
}

// handlePagerKey routes keys to the focused pager. Esc hands focus back to
// the product rows.
func (m *ShopModel) handlePagerKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		m.pagerFocused = false
		m.pager = m.pager.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(keyMsg)
	return m, cmd
}

// isPagerKey reports whether a key drives the pager even while the list
// has focus.
func isPagerKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case keyLeft, keyRight, keyH, keyL, "home", "end", "g", "G", "pgup", "pgdown":
		return true
	default:
		return false
	}
}

func (m *ShopModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
			return m, nil
		case keyA:
			return m, m.addSelected()
		}
	}
	return m, nil
}

func (m *ShopModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyR:
			return m, m.load(m.requested)
		}
	}
	return m, nil
}

func (m *ShopModel) addSelected() tea.Cmd {
	product, ok := m.list.SelectedItem()
	if !ok || m.addToCart == nil {
		return nil
	}
	ctx, add := m.ctx, m.addToCart
	return func() tea.Msg {
		return cartAddedMsg{name: product.Name, err: add(ctx, product.ID, 1)}
	}
}

func cartNotice(msg cartAddedMsg) string {
	if msg.err != nil {
		return CriticalStyle.Render(api.Message(msg.err, "Failed to add item to cart"))
	}
	return OKStyle.Render(fmt.Sprintf("Added %q to cart", msg.name))
}

func (m *ShopModel) listHeight() int {
	return max(m.height-shopChromeHeight, minHeight)
}

// Page returns the page currently shown.
func (m *ShopModel) Page() int { return m.pager.Page() }

// TotalPages returns the number of pages for the current search.
func (m *ShopModel) TotalPages() int { return m.pager.Total() }

// Products returns the products of the current page.
func (m *ShopModel) Products() []api.Product { return m.products }

// State returns the current view state.
func (m *ShopModel) State() ViewState { return m.state }

// Err returns the last fetch error.
func (m *ShopModel) Err() error { return m.err }

// View renders the current view.
func (m *ShopModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateError:
		return lipgloss.JoinVertical(lipgloss.Left,
			CriticalStyle.Render("Error: "+api.Message(m.err, "Failed to load products")),
			SubtleStyle.Render("[r] Retry  [q] Quit"),
		)
	case ViewStateDetail:
		if product, ok := m.list.SelectedItem(); ok {
			return m.renderDetail(product)
		}
		return msgSelectedOutOfBounds
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *ShopModel) renderList() string {
	title := HeaderStyle.Render("SHOP")
	if m.keyword != "" {
		title += LabelStyle.Render(fmt.Sprintf("  search: %q", m.keyword))
	}

	sections := []string{title}
	if len(m.products) == 0 {
		sections = append(sections, SubtleStyle.Render("No products found."))
	} else {
		header := fmt.Sprintf("%-*s  %-*s  %*s  %*s  %*s",
			shopColWidthName, "Product",
			shopColWidthCategory, "Category",
			shopColWidthPrice, "Price",
			shopColWidthRating, "Rating",
			shopColWidthStock, "Stock",
		)
		sections = append(sections, TableHeaderStyle.Render(header), m.list.View())
	}

	sections = append(sections, m.pager.View())
	if m.notice != "" {
		sections = append(sections, m.notice)
	}
	if m.showSearch {
		sections = append(sections, LabelStyle.Render("Search: ")+m.search.View())
	}

	help := "[/] Search  [↑↓] Select  [←→] Page  [tab] Pager  [Enter] Details  [q] Quit"
	if m.pagerFocused {
		help = "[tab] Next button  [Enter] Go  [esc] Back to list  [q] Quit"
	}
	if m.addToCart != nil {
		help = "[a] Add to cart  " + help
	}
	sections = append(sections, SubtleStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderProductRow(p api.Product, selected bool) string {
	category := ""
	if p.Category != nil {
		category = p.Category.Name
	}
	row := fmt.Sprintf("%-*s  %-*s  %*s  %*s  %*d",
		shopColWidthName, truncate(p.Name, shopColWidthName),
		shopColWidthCategory, truncate(category, shopColWidthCategory),
		shopColWidthPrice, FormatPrice(p.Price()),
		shopColWidthRating, FormatRating(p.AverageRating),
		shopColWidthStock, p.Quantity,
	)
	if selected {
		return TableSelectedStyle.Render(row)
	}
	return row
}

func (m *ShopModel) renderDetail(p api.Product) string {
	var content strings.Builder
	fmt.Fprintf(&content, "%s\n\n", HeaderStyle.Render(p.Name))
	fmt.Fprintf(&content, "%s %s", LabelStyle.Render("Price:"), ValueStyle.Render(FormatPrice(p.Price())))
	if p.SalesPrice > 0 && p.SalesPrice < p.RegularPrice {
		fmt.Fprintf(&content, " %s", SubtleStyle.Strikethrough(true).Render(FormatPrice(p.RegularPrice)))
	}
	content.WriteString("\n")
	fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Rating:"), ValueStyle.Render(FormatRating(p.AverageRating)))

	stock := OKStyle.Render(fmt.Sprintf("%d in stock", p.Quantity))
	if !p.IsAvailable || p.Quantity == 0 {
		stock = WarningStyle.Render("Out of stock")
	}
	fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Stock:"), stock)
	if p.Category != nil {
		fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Category:"), ValueStyle.Render(p.Category.Name))
	}
	if p.Vendor != nil {
		vendor := strings.TrimSpace(p.Vendor.FirstName + " " + p.Vendor.LastName)
		fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Vendor:"), ValueStyle.Render(vendor))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Tags:"), strings.Join(p.Tags, ", "))
	}
	if desc := firstNonEmpty(p.LongDesc, p.ShortDesc); desc != "" {
		fmt.Fprintf(&content, "\n%s\n", lipgloss.NewStyle().Width(m.width-2*borderPadding).Render(desc))
	}
	if m.notice != "" {
		fmt.Fprintf(&content, "\n%s\n", m.notice)
	}

	help := "[esc] Back  [q] Quit"
	if m.addToCart != nil {
		help = "[a] Add to cart  " + help
	}
	fmt.Fprintf(&content, "\n%s", SubtleStyle.Render(help))
	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
