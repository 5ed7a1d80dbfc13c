package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/checkout"
	"github.com/rshade/storefront/internal/logging"
	"github.com/rshade/storefront/internal/store"
)

func newCheckoutCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "checkout", Short: "Place and pay for orders"}
	cmd.AddCommand(newCheckoutPlaceCmd(), newCheckoutPayCmd(), newCheckoutValidateCardCmd())
	return cmd
}

func newCheckoutPlaceCmd() *cobra.Command {
	var (
		delivery api.DeliveryInfo
		coupon   string
		email    string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Turn the cart into an order",
		Example: `  storefront checkout place --address "1 Main St" --city Kigali --zip 00000 \
    --email ada@example.com --name "Ada Lovelace" --coupon SPRING15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}

			ctx := cmd.Context()
			co := store.NewCheckout(client)
			co.UpdateDeliveryInfo(delivery)
			co.UpdateCouponCode(coupon)
			first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
			order, err := co.PlaceOrder(ctx, email, first, strings.TrimSpace(last))
			if err != nil {
				return fmt.Errorf("placing order: %w", err)
			}

			logging.FromContext(ctx).Info().Ctx(ctx).
				Int("order_id", order.ID).
				Str("tracking", order.TrackingNumber).
				Msg("order placed")
			return render(cmd, order, func(w io.Writer) error {
				return orderDetail(w, order)
			})
		},
	}

	cmd.Flags().StringVar(&delivery.Address, "address", "", "street address")
	cmd.Flags().StringVar(&delivery.City, "city", "", "city")
	cmd.Flags().StringVar(&delivery.Zip, "zip", "", "postal code")
	cmd.Flags().StringVar(&coupon, "coupon", "", "coupon code")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&name, "name", "", "buyer's full name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newCheckoutPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <order-id>",
		Short: "Start payment of an order",
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

			ctx := cmd.Context()
			co := store.NewCheckout(client)
			if err = co.FetchOrders(ctx); err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}
			if !co.SelectOrder(id) {
				return fmt.Errorf("%w: no order %d", errInvalidID, id)
			}
			if co.State().Order.Paid {
				return fmt.Errorf("%w: order %d", errAlreadyPaid, id)
			}
			res, err := co.Pay(ctx)
			if err != nil {
				return fmt.Errorf("paying order %d: %w", id, err)
			}

			logging.FromContext(ctx).Info().Ctx(ctx).Int("order_id", id).Bool("success", res.Success).Msg("payment started")
			return render(cmd, res, func(w io.Writer) error {
				if res.URL != "" {
					_, err := fmt.Fprintf(w, "Complete payment at %s\n", res.URL)
					return err
				}
				_, err := fmt.Fprintf(w, "Payment for order %d started\n", id)
				return err
			})
		},
	}
}

func newCheckoutValidateCardCmd() *cobra.Command {
	var card checkout.Card

	cmd := &cobra.Command{
		Use:     "validate-card",
		Short:   "Check card details before paying",
		Example: `  storefront checkout validate-card --holder "Ada Lovelace" --number 4111111111111111 --expiry 12/30 --cvv 123`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := card.Validate(time.Now()); err != nil {
				return err
			}
			cmd.Printf("%s card %s is valid\n", checkout.DetectCardType(card.Number), checkout.Mask(card.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&card.Holder, "holder", "", "cardholder name")
	cmd.Flags().StringVar(&card.Number, "number", "", "card number")
	cmd.Flags().StringVar(&card.Expiry, "expiry", "", "expiry date, MM/YY")
	cmd.Flags().StringVar(&card.CVV, "cvv", "", "security code")
	return cmd
}
