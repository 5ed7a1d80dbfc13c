package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/store"
)

// couponDateLayout is the expiration date format accepted by the backend.
const couponDateLayout = "2006-01-02"

func newCouponsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "coupons", Aliases: []string{"coupon"}, Short: "Manage discount coupons"}
	cmd.AddCommand(
		newCouponsListCmd("list", "List every coupon", (*api.Client).Coupons),
		newCouponsListCmd("mine", "List the coupons you created", (*api.Client).MyCoupons),
		newCouponsCreateCmd(),
		newCouponsDeleteCmd(),
	)
	return cmd
}

func newCouponsListCmd(use, short string, fetch func(*api.Client, context.Context) ([]api.Coupon, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			coupons := newCouponCollection()
			err = coupons.Fetch(cmd.Context(), func(ctx context.Context) ([]api.Coupon, error) {
				return fetch(client, ctx)
			})
			if err != nil {
				return fmt.Errorf("listing coupons: %w", err)
			}
			return renderCoupons(cmd, coupons.Snapshot().Items)
		},
	}
}

func newCouponsCreateCmd() *cobra.Command {
	var (
		coupon   api.Coupon
		products []int
		validFor time.Duration
	)

	cmd := &cobra.Command{
		Use:     "create <description>",
		Short:   "Create a coupon; the server assigns its code",
		Example: `  storefront coupons create "Spring sale" --percentage 15 --products 4,9 --valid-for 720h`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coupon.Description = strings.Join(args, " ")
			coupon.ApplicableProducts = products
			coupon.ExpirationDate = time.Now().Add(validFor).Format(couponDateLayout)

			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			created, err := newCouponCollection().Create(cmd.Context(), func(ctx context.Context) (api.Coupon, error) {
				return client.CreateCoupon(ctx, coupon)
			})
			if err != nil {
				return fmt.Errorf("creating coupon: %w", err)
			}
			return renderCoupons(cmd, []api.Coupon{created})
		},
	}

	cmd.Flags().Float64Var(&coupon.Percentage, "percentage", 10, "discount in percent")
	cmd.Flags().IntSliceVar(&products, "products", nil, "IDs of the products the coupon applies to")
	cmd.Flags().DurationVar(&validFor, "valid-for", 30*24*time.Hour, "how long the coupon stays valid")
	return cmd
}

func newCouponsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <coupon-id>",
		Short: "Delete a coupon",
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
			if err = newCouponCollection().Delete(cmd.Context(), id, func(ctx context.Context) error {
				return client.DeleteCoupon(ctx, id)
			}); err != nil {
				return fmt.Errorf("deleting coupon %d: %w", id, err)
			}
			cmd.Printf("Deleted coupon %d\n", id)
			return nil
		},
	}
}

func newCouponCollection() *store.Collection[api.Coupon] {
	return store.NewCollection("coupons", func(c api.Coupon) int { return c.ID })
}

func renderCoupons(cmd *cobra.Command, coupons []api.Coupon) error {
	return render(cmd, coupons, func(w io.Writer) error {
		if len(coupons) == 0 {
			_, err := fmt.Fprintln(w, "No coupons.")
			return err
		}
		rows := make([][]string, len(coupons))
		for i, c := range coupons {
			applies := make([]string, len(c.ApplicableProducts))
			for j, id := range c.ApplicableProducts {
				applies[j] = strconv.Itoa(id)
			}
			rows[i] = []string{
				strconv.Itoa(c.ID), c.Code, c.Description,
				strconv.FormatFloat(c.Percentage, 'f', -1, 64) + "%", c.ExpirationDate, strings.Join(applies, ","),
			}
		}
		return renderTable(w, []string{"ID", "CODE", "DESCRIPTION", "OFF", "EXPIRES", "PRODUCTS"}, rows)
	})
}
