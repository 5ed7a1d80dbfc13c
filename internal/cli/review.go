package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "review", Short: "Review products"}
	cmd.AddCommand(newReviewAddCmd())
	return cmd
}

func newReviewAddCmd() *cobra.Command {
	var review api.Review

	cmd := &cobra.Command{
		Use:     "add <product-id> <comment...>",
		Short:   "Review a product",
		Example: `  storefront review add 42 "Sturdy and well made" --rating 5`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			review.ProductID = id
			review.Content = strings.TrimSpace(strings.Join(args[1:], " "))

			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			saved, err := client.AddReview(cmd.Context(), review)
			if err != nil {
				return fmt.Errorf("reviewing product %d: %w", id, err)
			}
			return render(cmd, saved, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Reviewed product %d: %s %q\n",
					saved.ProductID, strings.Repeat("★", saved.Rating), saved.Content)
				return err
			})
		},
	}

	cmd.Flags().IntVarP(&review.Rating, "rating", "r", api.MaxRating,
		fmt.Sprintf("rating from %d to %d", api.MinRating, api.MaxRating))
	return cmd
}
