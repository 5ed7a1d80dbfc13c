package pager

// ButtonKind identifies what a control button does when pressed.
type ButtonKind int

const (
	// ButtonPrevious requests the page before the current one.
	ButtonPrevious ButtonKind = iota
	// ButtonPage requests a concrete page.
	ButtonPage
	// ButtonEllipsis is an inert placeholder.
	ButtonEllipsis
	// ButtonNext requests the page after the current one.
	ButtonNext
)

// Button labels for the navigation controls.
const (
	PreviousLabel = "‹ Prev"
	NextLabel     = "Next ›"
)

// Button is one interactive element of a Control.
type Button struct {
	Kind     ButtonKind
	Label    string
	Target   int  // page requested when pressed; 0 when inert
	Active   bool // the current page's button
	Disabled bool
}

// Inert reports whether pressing the button does nothing.
func (b Button) Inert() bool {
	return b.Disabled || b.Kind == ButtonEllipsis || b.Target == 0
}

// Props are the caller-supplied inputs of a Control.
type Props struct {
	TotalPages   int
	CurrentPage  int
	OnPageChange func(page int)
}

// Control renders a PageWindow as previous/page/next buttons and reports
// navigation intent through OnPageChange. It owns no page state: the owner
// keeps the current page and builds a new Control whenever it changes.
type Control struct {
	state    PageState
	onChange func(page int)
	buttons  []Button
}

// NewControl builds a Control from props, clamping out-of-range values.
func NewControl(props Props) Control {
	c := Control{
		state:    NewPageState(props.CurrentPage, props.TotalPages),
		onChange: props.OnPageChange,
	}
	c.buttons = c.layout()
	return c
}

// State returns the clamped paging position the control was built with.
func (c Control) State() PageState {
	return c.state
}

// Window returns the page tokens between the navigation buttons.
func (c Control) Window() PageWindow {
	return c.state.Window()
}

// Buttons returns all buttons in display order: previous, tokens, next.
func (c Control) Buttons() []Button {
	out := make([]Button, len(c.buttons))
	copy(out, c.buttons)
	return out
}

// PreviousDisabled reports whether the previous button is inert.
func (c Control) PreviousDisabled() bool {
	return !c.state.HasPrevious()
}

// NextDisabled reports whether the next button is inert.
func (c Control) NextDisabled() bool {
	return !c.state.HasNext()
}

// Previous presses the previous button. It returns whether the callback ran.
func (c Control) Previous() bool {
	return c.Press(0)
}

// Next presses the next button. It returns whether the callback ran.
func (c Control) Next() bool {
	return c.Press(len(c.buttons) - 1)
}

// Press presses the button at index i of Buttons. Pressing an ellipsis, a
// disabled button or an index out of range does nothing. It returns whether
// the callback ran.
func (c Control) Press(i int) bool {
	if i < 0 || i >= len(c.buttons) {
		return false
	}
	b := c.buttons[i]
	if b.Inert() {
		return false
	}
	if c.onChange != nil {
		c.onChange(b.Target)
	}
	return true
}

// SelectPage presses the button showing page. Pages hidden behind an
// ellipsis are not selectable. It returns whether the callback ran.
func (c Control) SelectPage(page int) bool {
	for i, b := range c.buttons {
		if b.Kind == ButtonPage && b.Target == page {
			return c.Press(i)
		}
	}
	return false
}

func (c Control) layout() []Button {
	window := c.state.Window()
	current := c.state.Current()
	buttons := make([]Button, 0, len(window)+2)

	prev := Button{Kind: ButtonPrevious, Label: PreviousLabel, Disabled: c.PreviousDisabled()}
	if !prev.Disabled {
		prev.Target = current - 1
	}
	buttons = append(buttons, prev)

	for _, t := range window {
		if t.IsEllipsis() {
			buttons = append(buttons, Button{Kind: ButtonEllipsis, Label: t.String()})
			continue
		}
		buttons = append(buttons, Button{
			Kind:   ButtonPage,
			Label:  t.String(),
			Target: t.Page(),
			Active: t.Page() == current,
		})
	}

	next := Button{Kind: ButtonNext, Label: NextLabel, Disabled: c.NextDisabled()}
	if !next.Disabled {
		next.Target = current + 1
	}
	return append(buttons, next)
}
