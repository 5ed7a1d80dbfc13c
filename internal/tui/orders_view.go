package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/storefront/internal/api"
)

// View renders the current view.
func (m OrdersModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		hint := "[q] Quit"
		if m.fetchCmd != nil {
			hint = "[r] Retry  " + hint
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			CriticalStyle.Render("Error: "+api.Message(m.err, "Failed to load orders")),
			SubtleStyle.Render(hint),
		)
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m OrdersModel) renderListView() string {
	sections := []string{HeaderStyle.Render("ORDERS")}

	if len(m.rows) == 0 {
		sections = append(sections, SubtleStyle.Render("No orders match."))
	} else {
		sections = append(sections, m.table.View(), m.pager.View())
	}
	sections = append(sections, m.renderStatusBar())

	if m.showFilter {
		sections = append(sections, LabelStyle.Render("Tracking: ")+m.textInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OrdersModel) renderStatusBar() string {
	filter := ""
	if q := m.textInput.Value(); q != "" {
		filter = fmt.Sprintf(" | Tracking: %q", q)
	}
	status := fmt.Sprintf("Status: %s | Sort: %s%s | %d/%d orders",
		m.status, m.sortBy, filter, len(m.rows), len(m.allOrders))
	help := "[f] Status  [s] Sort  [/] Tracking  [←→] Page  [Enter] Details  [q] Quit"
	return SubtleStyle.Render(status + "\n" + help)
}

func (m OrdersModel) renderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return msgSelectedOutOfBounds
	}
	o := m.rows[m.selected]

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("ORDER " + o.TrackingNumber))
	content.WriteString("\n\n")
	writeField(&content, "Status:  ", statusStyle(o.Status).Render(o.Status))
	writeField(&content, "Total:   ", ValueStyle.Render(FormatPrice(o.TotalAmount)))
	paid := WarningStyle.Render("no")
	if o.Paid {
		paid = OKStyle.Render("yes")
	}
	writeField(&content, "Paid:    ", paid)
	if o.CouponCode != "" {
		writeField(&content, "Coupon:  ", ValueStyle.Render(o.CouponCode))
	}

	if address := formatAddress(o.DeliveryInfo); address != "" {
		writeField(&content, "Ship to: ", ValueStyle.Render(address))
	}
	if !o.CreatedAt.IsZero() {
		writeField(&content, "Placed:  ", ValueStyle.Render(o.CreatedAt.Format("2006-01-02 15:04")))
	}

	if len(o.OrderDetails) > 0 {
		content.WriteString("\n")
		content.WriteString(HeaderStyle.Render("ITEMS"))
		content.WriteString("\n")
		for _, item := range o.OrderDetails {
			fmt.Fprintf(&content, "  %3d × %s\n", item.Quantity, FormatPrice(item.Price))
		}
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))
	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func formatAddress(d api.DeliveryInfo) string {
	parts := make([]string, 0, 3) //nolint:mnd // Address, city, zip.
	for _, p := range []string{d.Address, d.City, d.Zip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
