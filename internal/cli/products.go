package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/cli/pagination"
	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/pager"
	"github.com/rshade/storefront/internal/store"
	"github.com/rshade/storefront/internal/tui"
)

// productListOutput is the json/yaml shape of a product listing.
type productListOutput struct {
	Products   []api.Product              `json:"products"             yaml:"products"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Aliases: []string{"product"}, Short: "Browse the product catalog"}
	cmd.AddCommand(
		newProductsListCmd(), newProductsSearchCmd(), newProductsShowCmd(),
		newProductsRecommendedCmd(), newProductsPopularCmd(),
	)
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var (
		params    pagination.PaginationParams
		available bool
	)
	sorter := pagination.NewProductSorter()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Example: `  storefront products list
  storefront products list --available --sort price:asc --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			fetch := client.ListProducts
			if available {
				fetch = client.AvailableProducts
			}
			products := store.NewCollection("products", productID)
			if err = products.Fetch(ctx, fetch); err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			items, err := sorter.SortExpr(products.Snapshot().Items, params.Sort)
			if err != nil {
				return err
			}
			pageItems, meta := pagination.Apply(params, items, config.GetGlobalConfig().Catalog.PageSize)
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Int("total", len(items)).
				Int("shown", len(pageItems)).
				Msg("products listed")

			var metaOut *pagination.PaginationMeta
			if params.IsEnabled() {
				metaOut = &meta
			}
			return renderProducts(cmd, pageItems, metaOut)
		},
	}

	params.AddFlags(cmd, sorter.Help())
	cmd.Flags().BoolVar(&available, "available", false, "only products in stock")
	return cmd
}

func newProductsSearchCmd() *cobra.Command {
	var params api.SearchParams

	cmd := &cobra.Command{
		Use:   "search [keyword...]",
		Short: "Search products; paging is done by the server",
		Example: `  storefront products search lamp
  storefront products search --category furniture --min-rating 4 --page 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Keyword = strings.TrimSpace(strings.Join(args, " "))
			if params.Page <= 0 {
				params.Page = 1
			}
			if params.PageSize <= 0 {
				params.PageSize = config.GetGlobalConfig().Catalog.PageSize
			}
			if params.PageSize > pagination.MaxPageSize {
				return fmt.Errorf("%w: got %d", pagination.ErrInvalidPageSize, params.PageSize)
			}

			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.SearchProducts(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("searching products: %w", err)
			}

			state := pager.NewPageState(params.Page, pager.TotalPagesFor(page.Total, params.PageSize))
			meta := pagination.NewPaginationMeta(state, params.PageSize, page.Total)
			return render(cmd, productListOutput{Products: page.Items, Pagination: &meta}, func(w io.Writer) error {
				if err := productTable(w, page.Items); err != nil {
					return err
				}
				_, err := fmt.Fprintln(w, "\n"+pageLine(state))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&params.Category, "category", "", "category name")
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "maximum price")
	cmd.Flags().Float64Var(&params.MinRating, "min-rating", 0, "minimum average rating")
	cmd.Flags().IntVar(&params.Page, pagination.FlagPage, 1, "page number (1-based)")
	cmd.Flags().IntVar(&params.PageSize, pagination.FlagPageSize, 0, "products per page (defaults to catalog.page_size)")
	return cmd
}

func newProductsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product",
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
			product, err := client.GetProduct(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting product %d: %w", id, err)
			}
			return render(cmd, product, func(w io.Writer) error {
				return productDetail(w, product)
			})
		},
	}
}

func newProductsRecommendedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommended",
		Short: "List recommended products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			products, err := client.RecommendedProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing recommended products: %w", err)
			}
			return renderProducts(cmd, products, nil)
		},
	}
}

func newProductsPopularCmd() *cobra.Command {
	var (
		window int
		step   int
	)

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show the most popular products, a window at a time",
		Example: `  storefront products popular
  storefront products popular --window 4 --step 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if window <= 0 {
				window = config.GetGlobalConfig().Catalog.PopularWindow
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			products, err := client.ListProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			popular := store.MostPopular(products)
			carousel := pager.NewCarousel(window)
			for range max(step-1, 0) {
				carousel = carousel.Right(len(popular))
			}
			visible := pager.Visible(popular, carousel)

			return render(cmd, productListOutput{Products: visible}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, tui.RenderPopularStrip(popular, carousel))
				return err
			})
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "products shown at once (defaults to catalog.popular_window)")
	cmd.Flags().IntVar(&step, "step", 1, "which window to show; stops at the last one")
	return cmd
}

func productID(p api.Product) int { return p.ID }

func renderProducts(cmd *cobra.Command, products []api.Product, meta *pagination.PaginationMeta) error {
	return render(cmd, productListOutput{Products: products, Pagination: meta}, func(w io.Writer) error {
		if err := productTable(w, products); err != nil {
			return err
		}
		if meta != nil {
			_, err := fmt.Fprintf(w, "\n%s (%d products)\n", pageLine(meta.State()), meta.TotalItems)
			return err
		}
		return nil
	})
}

func productTable(w io.Writer, products []api.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}
	rows := make([][]string, len(products))
	for i, p := range products {
		category := "-"
		if p.Category != nil {
			category = p.Category.Name
		}
		rows[i] = []string{
			strconv.Itoa(p.ID), p.Name, category,
			tui.FormatPrice(p.Price()), tui.FormatRating(p.AverageRating), strconv.Itoa(p.Quantity),
		}
	}
	return renderTable(w, []string{"ID", "NAME", "CATEGORY", "PRICE", "RATING", "STOCK"}, rows)
}

func productDetail(w io.Writer, p api.Product) error {
	rows := [][]string{
		{"ID", strconv.Itoa(p.ID)},
		{"Name", p.Name},
		{"Price", tui.FormatPrice(p.Price())},
		{"Regular price", tui.FormatPrice(p.RegularPrice)},
		{"Rating", tui.FormatRating(p.AverageRating)},
		{"Stock", strconv.Itoa(p.Quantity)},
		{"Available", strconv.FormatBool(p.IsAvailable)},
	}
	if p.Category != nil {
		rows = append(rows, []string{"Category", p.Category.Name})
	}
	if p.Vendor != nil {
		rows = append(rows, []string{"Vendor", strings.TrimSpace(p.Vendor.FirstName + " " + p.Vendor.LastName)})
	}
	if len(p.Tags) > 0 {
		rows = append(rows, []string{"Tags", strings.Join(p.Tags, ", ")})
	}
	if p.ShortDesc != "" {
		rows = append(rows, []string{"Summary", p.ShortDesc})
	}
	return renderTable(w, []string{"FIELD", "VALUE"}, rows)
}

// parseID parses a positive numeric resource ID.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return id, nil
}
