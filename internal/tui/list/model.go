package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. selected marks the row under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// KeyMap lists the bindings the list reacts to.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns arrow and vim bindings. Home/end are left to the
// owner so they can drive a pager.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "top")),
		Bottom: key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "bottom")),
	}
}

// Model is a scrolling cursor list.
type Model[T any] struct {
	KeyMap KeyMap

	items      []T
	renderFunc RenderFunc[T]
	selected   int
	offset     int
	height     int
}

// New creates a list over items showing at most height rows.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		KeyMap:     DefaultKeyMap(),
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
	}
	m.scroll()
	return m
}

// SetItems replaces the rows and moves the cursor to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.offset = 0
	m.scroll()
}

// SetHeight changes the viewport height.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.scroll()
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd { return nil }

// Update moves the cursor.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(keyMsg, m.KeyMap.Top):
		m.SetSelected(0)
	case key.Matches(keyMsg, m.KeyMap.Bottom):
		m.SetSelected(len(m.items) - 1)
	}
	return m, nil
}

// scroll keeps the cursor inside [offset, offset+height).
func (m *Model[T]) scroll() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
	if limit := max(len(m.items)-m.height, 0); m.offset > limit {
		m.offset = limit
	}
}

// View renders the rows in the viewport.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	end := min(m.offset+m.height, len(m.items))
	var sb strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// Len returns the number of rows.
func (m *Model[T]) Len() int { return len(m.items) }

// Selected returns the cursor index.
func (m *Model[T]) Selected() int { return m.selected }

// SetSelected moves the cursor, clamped to the rows.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}
	m.selected = max(0, min(index, len(m.items)-1))
	m.scroll()
}

// Offset returns the index of the first visible row.
func (m *Model[T]) Offset() int { return m.offset }

// SelectedItem returns the row under the cursor, or false when empty.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.selected], true
}
