package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBranches(t *testing.T) {
	t.Run("strips the current-branch marker and preserves order", func(t *testing.T) {
		raw := "  feature/parser\n* main\n  release-1.2\n"

		branches := parseBranches(raw)

		require.Equal(t, []string{"feature/parser", "main", "release-1.2"}, branches)
	})

	t.Run("drops blank lines", func(t *testing.T) {
		branches := parseBranches("* main\n\n  dev\n\n")

		require.Equal(t, []string{"main", "dev"}, branches)
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		require.Empty(t, parseBranches(""))
	})
}

func TestParseVersion(t *testing.T) {
	t.Run("extracts a dotted version from the banner", func(t *testing.T) {
		require.Equal(t, "2.43.0", parseVersion("git version 2.43.0"))
	})

	t.Run("handles vendor-suffixed banners", func(t *testing.T) {
		require.Equal(t, "2.39.3", parseVersion("git version 2.39.3 (Apple Git-146)"))
	})

	t.Run("returns the trimmed raw text when no version matches", func(t *testing.T) {
		require.Equal(t, "experimental build", parseVersion("  experimental build\n"))
	})
}
