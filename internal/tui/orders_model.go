package tui

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/pager"
	"github.com/rshade/storefront/internal/tui/pagerview"
)

// OrdersPerPage is the number of orders shown per table page.
const OrdersPerPage = 5

// tableHeaderHeight is the header line plus its bottom border.
const tableHeaderHeight = 2

// OrderSortField is the column orders are sorted by.
type OrderSortField int

const (
	// SortOrdersByUpdated sorts most recently updated first.
	SortOrdersByUpdated OrderSortField = iota
	// SortOrdersByTracking sorts by tracking number.
	SortOrdersByTracking
	// SortOrdersByStatus sorts by status.
	SortOrdersByStatus
	// SortOrdersByTotal sorts by total amount, highest first.
	SortOrdersByTotal

	numOrderSortFields = 4
)

func (f OrderSortField) String() string {
	switch f {
	case SortOrdersByUpdated:
		return "Updated"
	case SortOrdersByTracking:
		return "Tracking"
	case SortOrdersByStatus:
		return "Status"
	case SortOrdersByTotal:
		return "Total"
	default:
		return "Unknown"
	}
}

// OrderStatusFilter restricts the table to one order status.
type OrderStatusFilter int

const (
	// ShowAllOrders disables the status filter.
	ShowAllOrders OrderStatusFilter = iota
	// ShowPendingOrders shows unpaid orders only.
	ShowPendingOrders
	// ShowCompletedOrders shows completed orders only.
	ShowCompletedOrders

	numOrderStatusFilters = 3
)

func (f OrderStatusFilter) String() string {
	switch f {
	case ShowPendingOrders:
		return api.OrderPending
	case ShowCompletedOrders:
		return api.OrderCompleted
	default:
		return "All"
	}
}

func (f OrderStatusFilter) matches(o api.Order) bool {
	if f == ShowAllOrders {
		return true
	}
	return strings.EqualFold(o.Status, f.String())
}

// OrdersFetcher loads the signed-in user's orders.
type OrdersFetcher func(ctx context.Context) ([]api.Order, error)

type ordersLoadedMsg struct {
	orders []api.Order
	err    error
}

// OrdersModel is the interactive order history. All orders are loaded once;
// filtering, sorting and paging happen locally.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type OrdersModel struct {
	state     ViewState
	allOrders []api.Order
	rows      []api.Order

	table     table.Model
	textInput textinput.Model
	pager     pagerview.Model
	selected  int

	width      int
	height     int
	sortBy     OrderSortField
	status     OrderStatusFilter
	showFilter bool

	loading  *LoadingState
	fetchCmd tea.Cmd
	err      error
}

// NewOrdersModel creates an orders view over already loaded orders.
func NewOrdersModel(orders []api.Order) OrdersModel {
	m := OrdersModel{
		state:     ViewStateList,
		textInput: newTrackingInput(),
		pager:     pagerview.New(1, 0),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.setOrders(orders)
	return m
}

// NewOrdersModelWithLoading creates an orders view that fetches on Init.
func NewOrdersModelWithLoading(ctx context.Context, fetch OrdersFetcher) OrdersModel {
	m := OrdersModel{
		state:     ViewStateLoading,
		textInput: newTrackingInput(),
		pager:     pagerview.New(1, 0),
		loading:   NewLoadingState(),
		width:     defaultWidth,
		height:    defaultHeight,
		fetchCmd: func() tea.Msg {
			orders, err := fetch(ctx)
			return ordersLoadedMsg{orders: orders, err: err}
		},
	}
	m.loading.SetMessage("Loading orders...")
	m.rebuildTable()
	return m
}

func newTrackingInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Tracking number..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init starts loading when the model was created with a fetcher.
func (m OrdersModel) Init() tea.Cmd {
	if m.state == ViewStateLoading && m.fetchCmd != nil {
		return tea.Batch(m.loading.Init(), m.fetchCmd)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m OrdersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case ordersLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = ViewStateError
			return m, nil
		}
		m.state = ViewStateList
		m.setOrders(msg.orders)
		return m, nil
	case pagerview.PageRequestedMsg:
		m.pager = m.pager.SetPage(msg.Page)
		m.rebuildTable()
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		if m.loading != nil {
			return m, m.loading.Update(msg)
		}
		return m, nil
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

func (m OrdersModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m OrdersModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.absoluteIndex(m.table.Cursor())
		if m.selected >= 0 && m.selected < len(m.rows) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyS:
		m.sortBy = (m.sortBy + 1) % numOrderSortFields
		m.applyFilter()
		return m, nil
	case keyF:
		m.status = (m.status + 1) % numOrderStatusFilters
		m.applyFilter()
		return m, nil
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	if isPagerKey(keyMsg) {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(keyMsg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

func (m OrdersModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

func (m OrdersModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyR:
		if m.fetchCmd != nil {
			m.err = nil
			m.state = ViewStateLoading
			return m, tea.Batch(m.loading.Init(), m.fetchCmd)
		}
	}
	return m, nil
}

func (m *OrdersModel) setOrders(orders []api.Order) {
	m.allOrders = orders
	m.applyFilter()
}

// applyFilter rebuilds the visible rows from the status filter, the
// tracking search and the sort field, and goes back to the first page.
func (m *OrdersModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.textInput.Value()))
	rows := make([]api.Order, 0, len(m.allOrders))
	for _, o := range m.allOrders {
		if !m.status.matches(o) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(o.TrackingNumber), query) {
			continue
		}
		rows = append(rows, o)
	}
	sortOrders(rows, m.sortBy)
	m.rows = rows

	m.pager = m.pager.
		SetTotal(pager.TotalPagesFor(len(m.rows), OrdersPerPage)).
		SetPage(1)
	m.rebuildTable()
}

func sortOrders(orders []api.Order, by OrderSortField) {
	slices.SortStableFunc(orders, func(a, b api.Order) int {
		switch by {
		case SortOrdersByUpdated:
			return b.UpdatedAt.Compare(a.UpdatedAt)
		case SortOrdersByTracking:
			return cmp.Compare(a.TrackingNumber, b.TrackingNumber)
		case SortOrdersByStatus:
			return cmp.Compare(a.Status, b.Status)
		case SortOrdersByTotal:
			return cmp.Compare(b.TotalAmount, a.TotalAmount)
		default:
			return 0
		}
	})
}

func (m OrdersModel) absoluteIndex(cursor int) int {
	return (m.pager.Page()-1)*OrdersPerPage + cursor
}

// visibleRows returns the orders of the current page.
func (m OrdersModel) visibleRows() []api.Order {
	rows, _ := pager.Slice(m.rows, m.pager.Page(), OrdersPerPage)
	return rows
}

func (m *OrdersModel) rebuildTable() {
	m.table = m.buildOrdersTable()
}

func (m *OrdersModel) buildOrdersTable() table.Model {
	columns := []table.Column{
		{Title: "Tracking", Width: 20}, //nolint:mnd // Column width.
		{Title: "Status", Width: 10},   //nolint:mnd // Column width.
		{Title: "Total", Width: 12},    //nolint:mnd // Column width.
		{Title: "Items", Width: 6},     //nolint:mnd // Column width.
		{Title: "City", Width: 16},     //nolint:mnd // Column width.
		{Title: "Updated", Width: 16},  //nolint:mnd // Column width.
	}

	visible := m.visibleRows()
	rows := make([]table.Row, len(visible))
	for i, o := range visible {
		updated := "-"
		if !o.UpdatedAt.IsZero() {
			updated = o.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows[i] = table.Row{
			truncate(o.TrackingNumber, 20), //nolint:mnd // Column width.
			o.Status,
			FormatPrice(o.TotalAmount),
			FormatCount(itemCount(o)),
			truncate(o.DeliveryInfo.City, 16), //nolint:mnd // Column width.
			updated,
		}
	}

	// Paging belongs to the pager; the table only moves the cursor.
	keys := table.DefaultKeyMap()
	for _, b := range []*key.Binding{
		&keys.PageUp, &keys.PageDown, &keys.HalfPageUp, &keys.HalfPageDown, &keys.GotoTop, &keys.GotoBottom,
	} {
		b.SetEnabled(false)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(OrdersPerPage+tableHeaderHeight),
		table.WithKeyMap(keys),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func itemCount(o api.Order) int {
	n := 0
	for _, d := range o.OrderDetails {
		n += d.Quantity
	}
	return n
}

// Rows returns the filtered and sorted orders.
func (m OrdersModel) Rows() []api.Order { return m.rows }

// Page returns the current table page.
func (m OrdersModel) Page() int { return m.pager.Page() }

// TotalPages returns the number of table pages.
func (m OrdersModel) TotalPages() int { return m.pager.Total() }

// State returns the current view state.
func (m OrdersModel) State() ViewState { return m.state }
