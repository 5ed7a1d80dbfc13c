package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/cli/pagination"
	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/store"
	"github.com/rshade/storefront/internal/tui"
)

// orderListOutput is the json/yaml shape of an order listing.
type orderListOutput struct {
	Orders     []api.Order                `json:"orders"               yaml:"orders"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Aliases: []string{"order"}, Short: "Browse your orders"}
	cmd.AddCommand(newOrdersListCmd(), newOrdersShowCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var (
		params      pagination.PaginationParams
		status      string
		tracking    string
		interactive bool
	)
	sorter := pagination.NewOrderSorter()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Example: `  storefront orders list --status pending --sort total:desc
  storefront orders list --page 2
  storefront orders list --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}

			ctx := cmd.Context()
			if interactive && isTerminal(os.Stdout) {
				p := tea.NewProgram(tui.NewOrdersModelWithLoading(ctx, client.Orders), tea.WithAltScreen())
				if _, err = p.Run(); err != nil {
					return fmt.Errorf("failed to run interactive TUI: %w", err)
				}
				return nil
			}

			orders := store.NewCollection("orders", func(o api.Order) int { return o.ID })
			if err = orders.Fetch(ctx, client.Orders); err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}
			matching := filterOrders(orders.Snapshot().Items, status, tracking)
			sorted, err := sorter.SortExpr(matching, params.Sort)
			if err != nil {
				return err
			}
			pageItems, meta := pagination.Apply(params, sorted, config.GetGlobalConfig().Catalog.OrdersPageSize)
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Int("total", len(orders.Snapshot().Items)).
				Int("matching", len(matching)).
				Msg("orders listed")

			out := orderListOutput{Orders: pageItems}
			if params.IsEnabled() {
				out.Pagination = &meta
			}
			return render(cmd, out, func(w io.Writer) error {
				if err := orderTable(w, pageItems); err != nil {
					return err
				}
				if out.Pagination != nil {
					_, err := fmt.Fprintf(w, "\n%s (%d orders)\n", pageLine(meta.State()), meta.TotalItems)
					return err
				}
				return nil
			})
		},
	}

	params.AddFlags(cmd, sorter.Help())
	cmd.Flags().StringVar(&status, "status", "", "only orders with this status (pending, completed)")
	cmd.Flags().StringVar(&tracking, "tracking", "", "only orders whose tracking number contains this text")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse orders in the terminal UI")
	return cmd
}

func newOrdersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			checkout := store.NewCheckout(client)
			if err = checkout.FetchOrders(cmd.Context()); err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}
			if !checkout.SelectOrder(id) {
				return fmt.Errorf("%w: no order %d", errInvalidID, id)
			}
			order := checkout.State().Order
			return render(cmd, order, func(w io.Writer) error {
				return orderDetail(w, order)
			})
		},
	}
}

// filterOrders keeps orders whose status matches (case-insensitive) and
// whose tracking number contains tracking. Empty criteria match everything.
func filterOrders(orders []api.Order, status, tracking string) []api.Order {
	tracking = strings.ToLower(strings.TrimSpace(tracking))
	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && !strings.EqualFold(o.Status, status) {
			continue
		}
		if tracking != "" && !strings.Contains(strings.ToLower(o.TrackingNumber), tracking) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func orderTable(w io.Writer, orders []api.Order) error {
	if len(orders) == 0 {
		_, err := fmt.Fprintln(w, "No orders match.")
		return err
	}
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			strconv.Itoa(o.ID), o.TrackingNumber, o.Status, tui.FormatPrice(o.TotalAmount),
			strconv.FormatBool(o.Paid), o.UpdatedAt.Format("2006-01-02 15:04"),
		}
	}
	return renderTable(w, []string{"ID", "TRACKING", "STATUS", "TOTAL", "PAID", "UPDATED"}, rows)
}

func orderDetail(w io.Writer, o api.Order) error {
	rows := [][]string{
		{"ID", strconv.Itoa(o.ID)},
		{"Tracking", o.TrackingNumber},
		{"Status", o.Status},
		{"Total", tui.FormatPrice(o.TotalAmount)},
		{"Paid", strconv.FormatBool(o.Paid)},
		{"Ship to", strings.Join(nonEmpty(o.DeliveryInfo.Address, o.DeliveryInfo.City, o.DeliveryInfo.Zip), ", ")},
	}
	if o.CouponCode != "" {
		rows = append(rows, []string{"Coupon", o.CouponCode})
	}
	for _, d := range o.OrderDetails {
		rows = append(rows, []string{
			"Item " + strconv.Itoa(d.ID),
			fmt.Sprintf("%d x %s", d.Quantity, tui.FormatPrice(d.Price)),
		})
	}
	return renderTable(w, []string{"FIELD", "VALUE"}, rows)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
