package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/storefront/internal/api"
)

func TestParseVersionConstraint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"greater than or equal", ">=1.0.0", false},
		{"less than", "<2.0.0", false},
		{"range", ">=1.0.0,<2.0.0", false},
		{"supported", api.SupportedServerVersions, false},
		{"tilde", "~1.2.3", false},
		{"caret", "^1.2.3", false},
		{"empty", "", true},
		{"invalid", "not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := api.ParseVersionConstraint(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSatisfiesConstraint(t *testing.T) {
	constraint, err := api.ParseVersionConstraint(api.SupportedServerVersions)
	require.NoError(t, err)

	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", true},
		{"1.5.0", true},
		{"v1.9.9", true},
		{"0.9.0", false},
		{"2.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := api.SatisfiesConstraint(tt.version, constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "SatisfiesConstraint(%q)", tt.version)
		})
	}

	_, err = api.SatisfiesConstraint("latest", constraint)
	require.Error(t, err)
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "compatible", version: "1.4.2"},
		{name: "too new", version: "2.1.0", wantErr: api.ErrIncompatible},
		{name: "too old", version: "0.3.0", wantErr: api.ErrIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/version", r.URL.Path)
				writeJSON(t, w, http.StatusOK, map[string]string{"version": tt.version})
			})

			got, err := client.CheckCompatibility(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, got)
		})
	}
}
