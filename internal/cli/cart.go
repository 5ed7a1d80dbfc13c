package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/store"
	"github.com/rshade/storefront/internal/tui"
)

// cartOutput is the json/yaml shape of the cart.
type cartOutput struct {
	Items    []api.CartItem `json:"items"    yaml:"items"`
	Count    int            `json:"count"    yaml:"count"`
	Subtotal float64        `json:"subtotal" yaml:"subtotal"`
}

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cart", Short: "Manage the shopping cart"}
	cmd.AddCommand(newCartShowCmd(), newCartAddCmd(), newCartUpdateCmd(), newCartRemoveCmd())
	return cmd
}

// withCart signs in, loads the cart, runs fn against it and prints the
// resulting cart.
func withCart(cmd *cobra.Command, fn func(cart *store.Cart) error) error {
	client, err := newAPIClient(cmd)
	if err != nil {
		return err
	}
	if err = requireToken(client); err != nil {
		return err
	}

	ctx := cmd.Context()
	cart := store.NewCart(client)
	if err = cart.Fetch(ctx); err != nil {
		return fmt.Errorf("loading cart: %w", err)
	}
	if fn != nil {
		if err = fn(cart); err != nil {
			return err
		}
	}

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Int("lines", len(cart.Snapshot().Items)).
		Int("count", cart.Count()).
		Msg("cart ready")
	return renderCart(cmd, cart)
}

func newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCart(cmd, nil)
		},
	}
}

func newCartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:     "add <product-id>",
		Short:   "Add a product to the cart",
		Example: `  storefront cart add 42 --quantity 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if quantity < 1 {
				return fmt.Errorf("%w: must be at least 1", errInvalidQuantity)
			}
			return withCart(cmd, func(cart *store.Cart) error {
				if err := cart.Add(cmd.Context(), productID, quantity); err != nil {
					return fmt.Errorf("adding product %d: %w", productID, err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "number of units")
	return cmd
}

func newCartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "update <item-id> <quantity>",
		Short:   "Change the quantity of a cart line; 0 removes it",
		Example: `  storefront cart update 7 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil || quantity < 0 {
				return fmt.Errorf("%w: %q", errInvalidQuantity, args[1])
			}
			return withCart(cmd, func(cart *store.Cart) error {
				if quantity == 0 {
					if err := cart.Remove(cmd.Context(), itemID); err != nil {
						return fmt.Errorf("removing cart line %d: %w", itemID, err)
					}
					return nil
				}
				if err := cart.UpdateQuantity(cmd.Context(), itemID, quantity); err != nil {
					return fmt.Errorf("updating cart line %d: %w", itemID, err)
				}
				return nil
			})
		},
	}
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withCart(cmd, func(cart *store.Cart) error {
				if err := cart.Remove(cmd.Context(), itemID); err != nil {
					return fmt.Errorf("removing cart line %d: %w", itemID, err)
				}
				return nil
			})
		},
	}
}

func renderCart(cmd *cobra.Command, cart *store.Cart) error {
	items := cart.Snapshot().Items
	out := cartOutput{Items: items, Count: cart.Count(), Subtotal: cart.Subtotal()}
	return render(cmd, out, func(w io.Writer) error {
		if len(items) == 0 {
			_, err := fmt.Fprintln(w, "Your cart is empty.")
			return err
		}
		rows := make([][]string, len(items))
		for i, item := range items {
			rows[i] = []string{
				strconv.Itoa(item.ID), strconv.Itoa(item.Product.ID), item.Product.Name,
				strconv.Itoa(item.Quantity), tui.FormatPrice(item.Product.Price()), tui.FormatPrice(item.Total()),
			}
		}
		if err := renderTable(w, []string{"LINE", "PRODUCT", "NAME", "QTY", "PRICE", "TOTAL"}, rows); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%s items, subtotal %s\n", tui.FormatCount(out.Count), tui.FormatPrice(out.Subtotal))
		return err
	})
}
