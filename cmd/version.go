package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/ajxudir/tabsplit/pkg/constants"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/tabsplit/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, release channel, build date, and system information.`,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	printVersionOutput(cmd.OutOrStdout())
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// canonicalVersion returns Version in canonical semver form ("v1.2.3-rc.1"),
// or "" when Version is not a semantic version.
func canonicalVersion() string {
	v := strings.TrimSpace(Version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// IsDevBuild returns true if this is a development build.
//
// Any Version that is not a semantic version, including the default "dev",
// counts as a development build.
//
// Returns:
//   - bool: true if Version does not parse as semver; false for tagged builds
func IsDevBuild() bool {
	return canonicalVersion() == ""
}

// IsPrerelease returns true if Version carries a semver prerelease suffix
// such as "1.2.0-rc.1".
func IsPrerelease() bool {
	v := canonicalVersion()
	return v != "" && semver.Prerelease(v) != ""
}

// ReleaseChannel returns "dev", "prerelease" or "release".
func ReleaseChannel() string {
	switch {
	case IsDevBuild():
		return "dev"
	case IsPrerelease():
		return "prerelease"
	default:
		return "release"
	}
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin", "windows")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}

	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// GetArchMismatchWarning returns a warning message if there's an architecture
// mismatch, or an empty string if everything matches.
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}

	buildOS, buildArch := getBuildTarget()
	return fmt.Sprintf("%s  Architecture mismatch: binary built for %s/%s but running on %s/%s\n"+
		"   This may cause unexpected behavior. Please download the correct binary.\n",
		constants.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
}

// GetDevBuildWarning returns a warning message if running a dev build,
// or an empty string if running a released version.
func GetDevBuildWarning() string {
	if !IsDevBuild() {
		return ""
	}

	return constants.IconWarn + "  Development build: this is an unreleased version without a version tag.\n" +
		"   For production use, please install a released version.\n"
}

// GetPrereleaseWarning returns a warning message if running a prerelease version,
// or an empty string if running a stable release.
func GetPrereleaseWarning() string {
	if !IsPrerelease() {
		return ""
	}

	return constants.IconWarn + "  Prerelease build: " + Version + "\n" +
		"   Not intended for production. Install a stable release (vX.Y.Z) instead.\n"
}

// GetBuildWarnings returns all build-related warnings combined.
//
// Returns:
//   - string: Combined warning messages; empty string if no warnings
func GetBuildWarnings() string {
	var warnings string

	if w := GetArchMismatchWarning(); w != "" {
		warnings += w
	}
	if w := GetDevBuildWarning(); w != "" {
		warnings += w
	}
	if w := GetPrereleaseWarning(); w != "" {
		warnings += w
	}

	return warnings
}
