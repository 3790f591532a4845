package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withVersion sets the build variables for one test.
func withVersion(t *testing.T, version, buildOS, buildArch string) {
	t.Helper()
	oldVersion, oldOS, oldArch := Version, BuildOS, BuildArch
	Version, BuildOS, BuildArch = version, buildOS, buildArch
	t.Cleanup(func() {
		Version, BuildOS, BuildArch = oldVersion, oldOS, oldArch
	})
}

func TestReleaseChannel(t *testing.T) {
	tests := []struct {
		version    string
		channel    string
		dev        bool
		prerelease bool
	}{
		{"dev", "dev", true, false},
		{"", "dev", true, false},
		{"not-a-version", "dev", true, false},
		{"1.2.3", "release", false, false},
		{"v1.2.3", "release", false, false},
		{"1.2", "release", false, false},
		{"1.3.0-rc.1", "prerelease", false, true},
		{"v2.0.0-beta", "prerelease", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version, "", "")
			assert.Equal(t, tt.channel, ReleaseChannel())
			assert.Equal(t, tt.dev, IsDevBuild())
			assert.Equal(t, tt.prerelease, IsPrerelease())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	withVersion(t, "1.3.0-rc.1", "", "")
	oldCommit := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = oldCommit }()

	res := runCLI(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Version: 1.3.0-rc.1 (prerelease)")
	assert.Contains(t, res.stdout, "Git:     abc123")
	assert.Contains(t, res.stdout, "Go:")
	assert.Equal(t, "1.3.0-rc.1", GetVersion())
}

func TestVersionFlag(t *testing.T) {
	withVersion(t, "1.0.0", "", "")

	res := runCLI(t, "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Version: 1.0.0 (release)")
}

func TestBuildWarnings(t *testing.T) {
	t.Run("release build has none", func(t *testing.T) {
		withVersion(t, "1.0.0", "", "")
		assert.Empty(t, GetBuildWarnings())
	})

	t.Run("dev build", func(t *testing.T) {
		withVersion(t, "dev", "", "")
		assert.Contains(t, GetBuildWarnings(), "Development build")
	})

	t.Run("prerelease build", func(t *testing.T) {
		withVersion(t, "1.0.0-rc.2", "", "")
		assert.Contains(t, GetPrereleaseWarning(), "Prerelease build: 1.0.0-rc.2")
		assert.Empty(t, GetDevBuildWarning())
	})

	t.Run("architecture mismatch", func(t *testing.T) {
		withVersion(t, "1.0.0", "plan9", "mips")
		assert.True(t, HasArchMismatch())
		assert.Contains(t, GetArchMismatchWarning(), "plan9/mips")
		os, arch := getBuildTarget()
		assert.Equal(t, "plan9", os)
		assert.Equal(t, "mips", arch)
	})

	t.Run("dev build has no mismatch", func(t *testing.T) {
		withVersion(t, "1.0.0", "", "")
		assert.False(t, HasArchMismatch())
		assert.Empty(t, GetArchMismatchWarning())
	})
}
