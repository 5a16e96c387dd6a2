package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitScope(t *testing.T) {
	entries := []ChangeEntry{
		{Path: "staged.txt", Status: StatusModified, Code: "M "},
		{Path: "unstaged.txt", Status: StatusModified, Code: " M"},
		{Path: "new.txt", Status: StatusUntracked, Code: "??"},
		{Path: "added.txt", Status: StatusAdded, Code: "A "},
	}

	t.Run("a plain commit records only staged entries", func(t *testing.T) {
		scoped := commitScope(entries, false)

		require.Len(t, scoped, 2)
		require.Equal(t, "staged.txt", scoped[0].Path)
		require.Equal(t, "added.txt", scoped[1].Path)
	})

	t.Run("staging all pulls in unstaged tracked edits but never untracked files", func(t *testing.T) {
		scoped := commitScope(entries, true)

		require.Len(t, scoped, 3)
		require.Equal(t, "staged.txt", scoped[0].Path)
		require.Equal(t, "unstaged.txt", scoped[1].Path)
		require.Equal(t, "added.txt", scoped[2].Path)
	})

	t.Run("only untracked files scope down to nothing", func(t *testing.T) {
		untracked := []ChangeEntry{{Path: "new.txt", Status: StatusUntracked, Code: "??"}}

		require.Empty(t, commitScope(untracked, true))
	})
}
