package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/logging"
)

// newAPIClient builds a client from the global config and, unless
// --skip-version-check is set, verifies that the backend speaks a supported
// API version. Backends without a /version route are accepted.
func newAPIClient(cmd *cobra.Command) (*api.Client, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	client, err := api.New(cfg.API.BaseURL,
		api.WithToken(cfg.API.Token),
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	if skip, _ := cmd.Flags().GetBool(flagSkipVersionCheck); skip {
		log.Debug().Ctx(ctx).Msg("skipping backend version check")
		return client, nil
	}

	version, err := client.CheckCompatibility(ctx)
	if errors.Is(err, api.ErrNotFound) {
		log.Debug().Ctx(ctx).Str("base_url", client.BaseURL()).Msg("backend reports no version, skipping check")
		return client, nil
	}
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("base_url", client.BaseURL()).Msg("backend version check failed")
		return nil, fmt.Errorf("checking backend version: %w", err)
	}
	log.Debug().Ctx(ctx).Str("server_version", version).Msg("backend version compatible")
	return client, nil
}

// requireToken fails early for commands that need a signed-in user.
func requireToken(client *api.Client) error {
	if !client.HasToken() {
		return fmt.Errorf("%w: set %s or api.token", errNotSignedIn, config.EnvToken)
	}
	return nil
}
