package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedServerVersions is the range of backend versions this client
// speaks.
const SupportedServerVersions = ">=1.0.0, <2.0.0"

// ServerVersion is the response of GET /version.
type ServerVersion struct {
	Version string `json:"version" yaml:"version"`
}

// Version returns the backend's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var v ServerVersion
	if err := c.get(ctx, "/version", nil, &v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// CheckCompatibility fetches the server version and verifies it against
// SupportedServerVersions. It returns the server version on success.
func (c *Client) CheckCompatibility(ctx context.Context) (string, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return "", err
	}

	constraint, err := ParseVersionConstraint(SupportedServerVersions)
	if err != nil {
		return "", err
	}
	ok, err := SatisfiesConstraint(version, constraint)
	if err != nil {
		return "", err
	}
	if !ok {
		return version, fmt.Errorf("%w: server %s, client supports %s", ErrIncompatible, version, SupportedServerVersions)
	}
	return version, nil
}

// ParseVersionConstraint parses a semver constraint such as ">=1.0.0,<2.0.0".
func ParseVersionConstraint(s string) (*semver.Constraints, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty version constraint")
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("parsing version constraint %q: %w", s, err)
	}
	return c, nil
}

// SatisfiesConstraint reports whether version (with or without a leading v)
// satisfies c.
func SatisfiesConstraint(version string, c *semver.Constraints) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
