package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitMessage(t *testing.T) {
	entry := func(path string) ChangeEntry {
		return ChangeEntry{Path: path, Status: StatusModified}
	}

	t.Run("produces the literal empty-commit message for zero changes", func(t *testing.T) {
		require.Equal(t, "Empty commit", commitMessage(nil))
		require.Equal(t, "Empty commit", commitMessage([]ChangeEntry{}))
	})

	t.Run("names a single changed file", func(t *testing.T) {
		message := commitMessage([]ChangeEntry{entry("a.txt")})

		require.Equal(t, "Update a.txt", message)
	})

	t.Run("joins up to three paths with commas", func(t *testing.T) {
		message := commitMessage([]ChangeEntry{entry("a.txt"), entry("b.txt"), entry("c.txt")})

		require.Equal(t, "Update a.txt, b.txt, c.txt", message)
	})

	t.Run("collapses the remainder into a count beyond three", func(t *testing.T) {
		message := commitMessage([]ChangeEntry{
			entry("a.txt"), entry("b.txt"), entry("c.txt"), entry("d.txt"),
		})

		require.Equal(t, "Update a.txt, b.txt, c.txt and 1 more files", message)
	})

	t.Run("counts larger remainders", func(t *testing.T) {
		entries := []ChangeEntry{}
		for _, path := range []string{"a", "b", "c", "d", "e", "f"} {
			entries = append(entries, entry(path))
		}

		require.Equal(t, "Update a, b, c and 3 more files", commitMessage(entries))
	})
}
