package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/pager"
	"github.com/rshade/storefront/internal/store"
	"github.com/rshade/storefront/internal/tui"
)

// homeOutput is the json/yaml shape of the home dashboard.
type homeOutput struct {
	Popular     []api.Product `json:"popular"            yaml:"popular"`
	Recommended []api.Product `json:"recommended"        yaml:"recommended"`
	CartCount   int           `json:"cart_count"         yaml:"cart_count"`
	CartTotal   float64       `json:"cart_total"         yaml:"cart_total"`
	Warnings    []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewHomeCmd creates the home dashboard command. The catalog, recommendations
// and cart are fetched concurrently.
func NewHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the most popular products, recommendations and your cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			out, err := loadHome(cmd.Context(), client)
			if err != nil {
				return err
			}
			window := config.GetGlobalConfig().Catalog.PopularWindow

			return render(cmd, out, func(w io.Writer) error {
				if _, err := fmt.Fprintln(w, tui.RenderPopularStrip(out.Popular, pager.NewCarousel(window))); err != nil {
					return err
				}
				if len(out.Recommended) > 0 {
					if _, err := fmt.Fprintln(w, "\nRECOMMENDED"); err != nil {
						return err
					}
					if err := productTable(w, out.Recommended); err != nil {
						return err
					}
				}
				if client.HasToken() {
					if _, err := fmt.Fprintf(w, "\nCart: %s items, %s\n",
						tui.FormatCount(out.CartCount), tui.FormatPrice(out.CartTotal)); err != nil {
						return err
					}
				}
				for _, warning := range out.Warnings {
					if _, err := fmt.Fprintln(w, "warning: "+warning); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// loadHome fetches the dashboard sections concurrently. Only the catalog is
// required; failures of the other sections become warnings.
func loadHome(ctx context.Context, client *api.Client) (homeOutput, error) {
	log := logging.FromContext(ctx)
	var (
		out         homeOutput
		products    []api.Product
		recommended []api.Product
		recErr      error
		cartErr     error
	)
	cart := store.NewCart(client)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = client.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("listing products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		recommended, recErr = client.RecommendedProducts(gctx)
		return nil
	})
	if client.HasToken() {
		g.Go(func() error {
			cartErr = cart.Fetch(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return homeOutput{}, err
	}

	out.Popular = store.MostPopular(products)
	out.Recommended = recommended
	out.CartCount = cart.Count()
	out.CartTotal = cart.Subtotal()
	if recErr != nil {
		out.Warnings = append(out.Warnings, api.Message(recErr, "Failed to fetch recommended products"))
	}
	if cartErr != nil {
		out.Warnings = append(out.Warnings, api.Message(cartErr, "Failed to fetch cart items"))
	}

	log.Debug().Ctx(ctx).
		Int("products", len(products)).
		Int("recommended", len(recommended)).
		Str("warnings", strings.Join(out.Warnings, "; ")).
		Msg("home loaded")
	return out, nil
}
