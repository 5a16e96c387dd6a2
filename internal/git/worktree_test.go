package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWorktrees(t *testing.T) {
	t.Run("accumulates one record per blank-line-terminated run", func(t *testing.T) {
		raw := "worktree /home/dev/repo\n" +
			"HEAD 1a2b3c4d5e6f1a2b3c4d5e6f1a2b3c4d5e6f1a2b\n" +
			"branch refs/heads/main\n" +
			"\n" +
			"worktree /home/dev/repo-hotfix\n" +
			"HEAD 9f8e7d6c5b4a9f8e7d6c5b4a9f8e7d6c5b4a9f8e\n" +
			"detached\n" +
			"\n"

		worktrees := parseWorktrees(raw)

		require.Len(t, worktrees, 2)
		require.Equal(t, "/home/dev/repo", worktrees[0].Path())
		require.Equal(t, "refs/heads/main", worktrees[0].Branch())
		require.Equal(t, "/home/dev/repo-hotfix", worktrees[1].Path())
		require.Empty(t, worktrees[1].Branch())

		// Value-less attribute keys are retained with empty values.
		_, detached := worktrees[1]["detached"]
		require.True(t, detached)
	})

	t.Run("handles a final record without a trailing blank line", func(t *testing.T) {
		raw := "worktree /home/dev/repo\nHEAD abc123\nbranch refs/heads/main"

		worktrees := parseWorktrees(raw)

		require.Len(t, worktrees, 1)
		require.Equal(t, "abc123", worktrees[0].Head())
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		require.Empty(t, parseWorktrees(""))
	})
}
