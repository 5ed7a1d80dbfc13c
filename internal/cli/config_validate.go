package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at $STOREFRONT_HOME/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax
- An absolute http(s) backend URL
- Page sizes between 1 and 100
- A supported default output format`,
		Example: `  # Validate current configuration
  storefront config validate

  # Validate and show detailed information
  storefront config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cfg.ApplyEnv()

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.Path())
	cmd.Printf("  Backend: %s (timeout %ds)\n", cfg.API.BaseURL, cfg.API.TimeoutSeconds)
	cmd.Printf("  Signed in: %t\n", cfg.API.Token != "")
	cmd.Printf("  Page sizes: catalog %d, orders %d, popular window %d\n",
		cfg.Catalog.PageSize, cfg.Catalog.OrdersPageSize, cfg.Catalog.PopularWindow)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
