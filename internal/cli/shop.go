package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/tui"
)

// NewShopCmd creates the interactive catalog browser. Every page request
// refetches that page from the server.
func NewShopCmd() *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the catalog interactively",
		Long: `Opens a terminal UI over the product catalog.

Keys: ←/→ change page, tab focuses the pager, / searches, a adds the selected
product to the cart, enter shows details, q quits.`,
		Example: `  storefront shop
  storefront shop --page-size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("%w: use 'storefront products search' instead", errNotInteractive)
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if pageSize <= 0 {
				pageSize = config.GetGlobalConfig().Catalog.PageSize
			}

			ctx := cmd.Context()
			model := tui.NewShopModel(ctx, shopFetcher(client, pageSize), pageSize)
			if client.HasToken() {
				model.SetCartAdder(func(ctx context.Context, productID, quantity int) error {
					_, err := client.AddCartItem(ctx, productID, quantity)
					return err
				})
			}

			logging.FromContext(ctx).Debug().Ctx(ctx).Int("page_size", pageSize).Msg("starting shop")
			if _, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "products per page (defaults to catalog.page_size)")
	return cmd
}

// shopFetcher searches the catalog one page at a time.
func shopFetcher(client *api.Client, pageSize int) tui.ProductFetcher {
	return func(ctx context.Context, page int, keyword string) (api.ProductPage, error) {
		return client.SearchProducts(ctx, api.SearchParams{Keyword: keyword, Page: page, PageSize: pageSize})
	}
}
