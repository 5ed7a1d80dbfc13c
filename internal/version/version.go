// Package version reports the build version of the storefront CLI.
package version

import "runtime/debug"

// Set at build time with
// -ldflags "-X github.com/rshade/storefront/internal/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version = ""
	commit  = ""
)

// devVersion is reported when neither ldflags nor module info carry a version.
const devVersion = "dev"

// GetVersion returns the linker-provided version, then the module version
// from build info, then "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetCommit returns the linker-provided commit hash, or the VCS revision
// recorded in build info.
func GetCommit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
}
