package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
)

func newWishlistCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "wishlist", Short: "Manage the wishlist"}
	cmd.AddCommand(
		newWishlistChangeCmd("show", "Show the wishlist", nil),
		newWishlistChangeCmd("add", "Add a product to the wishlist", (*api.Client).AddToWishlist),
		newWishlistChangeCmd("remove", "Remove a product from the wishlist", (*api.Client).RemoveFromWishlist),
	)
	return cmd
}

// newWishlistChangeCmd builds a wishlist subcommand. A nil change only shows
// the wishlist; otherwise the command takes a product ID and prints the list
// returned by the server.
func newWishlistChangeCmd(
	use, short string,
	change func(*api.Client, context.Context, int) ([]api.Product, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}

			ctx := cmd.Context()
			var products []api.Product
			if change == nil {
				products, err = client.Wishlist(ctx)
			} else {
				var id int
				if id, err = parseID(args[0]); err != nil {
					return err
				}
				products, err = change(client, ctx, id)
			}
			if err != nil {
				return fmt.Errorf("%s wishlist: %w", use, err)
			}
			return renderProducts(cmd, products, nil)
		},
	}
	if change != nil {
		cmd.Use = use + " <product-id>"
		cmd.Args = cobra.ExactArgs(1)
	}
	return cmd
}
