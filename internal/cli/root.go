package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
)

// Persistent flag names.
const (
	flagDebug            = "debug"
	flagConfig           = "config"
	flagSkipVersionCheck = "skip-version-check"
	flagOutput           = "output"
	flagAPIURL           = "api-url"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the storefront CLI.
// It wires up configuration, logging and tracing, and the command groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront shopping client",
		Long:          "Storefront: browse the catalog, manage your cart and orders from the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(flagConfig, "", "overlay config file whose sections replace the user config")
	cmd.PersistentFlags().Bool(flagSkipVersionCheck, false, "skip the backend version compatibility check")
	cmd.PersistentFlags().StringP(flagOutput, "o", "", "output format (table, json, yaml); defaults to output.default_format")
	cmd.PersistentFlags().String(flagAPIURL, "", "backend base URL (overrides api.base_url)")

	cmd.AddCommand(
		newProductsCmd(), newCartCmd(), newOrdersCmd(), newCheckoutCmd(),
		newWishlistCmd(), newReviewCmd(), newCouponsCmd(), newRolesCmd(),
		NewShopCmd(), NewHomeCmd(), newConfigCmd(),
	)

	return cmd
}

// loadConfig initializes the global config and merges the --config overlay
// and --api-url override on top of it.
func loadConfig(cmd *cobra.Command) error {
	base := config.GetGlobalConfig()
	cfg := *base

	if overlay, _ := cmd.Flags().GetString(flagConfig); overlay != "" {
		if err := config.ShallowMergeYAML(&cfg, overlay); err != nil {
			return fmt.Errorf("loading config overlay: %w", err)
		}
	}
	if apiURL, _ := cmd.Flags().GetString(flagAPIURL); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config.SetGlobalConfig(&cfg)
	return nil
}

const rootCmdExample = `  # Browse the catalog interactively
  storefront shop

  # Search products, second page of 10, as JSON
  storefront products search lamp --page 2 --page-size 10 -o json

  # Show the most popular products
  storefront products popular

  # Add a product to the cart and show the cart
  storefront cart add 42 --quantity 2
  storefront cart show

  # Place an order and pay for it
  storefront checkout place --address "1 Main St" --city Kigali --zip 00000
  storefront checkout pay 31

  # Point the client at another backend
  storefront config set api.base_url https://shop.example.com/api/v1`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
