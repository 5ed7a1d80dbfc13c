package pagerview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/storefront/internal/pager"
)

// PageRequestedMsg is emitted when the user asks for another page.
type PageRequestedMsg struct {
	Page int
}

//nolint:gochecknoglobals // Styles are immutable values.
var (
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle   = buttonStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	disabledStyle = buttonStyle.Foreground(lipgloss.Color("238"))
	ellipsisStyle = buttonStyle.Foreground(lipgloss.Color("240"))
	focusedStyle  = lipgloss.NewStyle().Underline(true)
)

// Model is the Bubble Tea component for a pager control.
type Model struct {
	KeyMap KeyMap

	current int
	total   int
	focus   int
	focused bool
}

// New creates a pager component for the given page and total.
func New(current, total int) Model {
	m := Model{KeyMap: DefaultKeyMap()}
	return m.SetTotal(total).SetPage(current)
}

// SetPage updates the current page, clamped to the total.
func (m Model) SetPage(page int) Model {
	m.current = m.State().WithPage(page).Current()
	m.clampFocus()
	return m
}

// SetTotal updates the total page count and re-clamps the current page.
func (m Model) SetTotal(total int) Model {
	s := m.State().WithTotal(total)
	m.total = s.Total()
	m.current = s.Current()
	m.clampFocus()
	return m
}

// Focus enables the focused-button cursor.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur hides the focused-button cursor.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Page returns the current page.
func (m Model) Page() int { return m.current }

// Total returns the total number of pages.
func (m Model) Total() int { return m.total }

// State returns the clamped page state.
func (m Model) State() pager.PageState {
	return pager.NewPageState(m.current, m.total)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses and turns them into page requests.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Previous):
		return m, m.request(func(c pager.Control) bool { return c.Previous() })
	case key.Matches(keyMsg, m.KeyMap.Next):
		return m, m.request(func(c pager.Control) bool { return c.Next() })
	case key.Matches(keyMsg, m.KeyMap.First):
		if m.current == 1 {
			return m, nil
		}
		return m, m.request(func(c pager.Control) bool { return c.SelectPage(1) })
	case key.Matches(keyMsg, m.KeyMap.Last):
		if m.current == m.total {
			return m, nil
		}
		return m, m.request(func(c pager.Control) bool { return c.SelectPage(m.total) })
	case key.Matches(keyMsg, m.KeyMap.FocusNext):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.KeyMap.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.KeyMap.Press):
		if m.focused {
			focus := m.focus
			return m, m.request(func(c pager.Control) bool { return c.Press(focus) })
		}
	}
	return m, nil
}

// request presses a button on a fresh control and returns a command
// carrying the requested page, or nil when the button was inert.
func (m Model) request(press func(pager.Control) bool) tea.Cmd {
	requested := 0
	c := pager.NewControl(pager.Props{
		TotalPages:   m.total,
		CurrentPage:  m.current,
		OnPageChange: func(page int) { requested = page },
	})
	if !press(c) {
		return nil
	}
	return func() tea.Msg { return PageRequestedMsg{Page: requested} }
}

func (m *Model) buttons() []pager.Button {
	return pager.NewControl(pager.Props{TotalPages: m.total, CurrentPage: m.current}).Buttons()
}

func (m *Model) moveFocus(step int) {
	buttons := m.buttons()
	if len(buttons) == 0 {
		return
	}
	for range buttons {
		m.focus = (m.focus + step + len(buttons)) % len(buttons)
		if !buttons[m.focus].Inert() {
			return
		}
	}
}

func (m *Model) clampFocus() {
	n := len(m.buttons())
	if m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// View renders the buttons on one line.
func (m Model) View() string {
	buttons := m.buttons()
	parts := make([]string, 0, len(buttons))
	for i, b := range buttons {
		var s string
		switch {
		case b.Kind == pager.ButtonEllipsis:
			s = ellipsisStyle.Render(b.Label)
		case b.Disabled:
			s = disabledStyle.Render(b.Label)
		case b.Active:
			s = activeStyle.Render(b.Label)
		default:
			s = buttonStyle.Render(b.Label)
		}
		if m.focused && i == m.focus {
			s = focusedStyle.Render(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "")
}
