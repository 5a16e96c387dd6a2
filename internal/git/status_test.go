package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("maps porcelain codes to change tags in order", func(t *testing.T) {
		raw := "?? a.txt\n M b.txt\nA  c.txt\nD  d.txt\n"

		entries := parseStatus(raw)

		require.Len(t, entries, 4)
		require.Equal(t, ChangeEntry{Path: "a.txt", Status: StatusUntracked, Code: "??"}, entries[0])
		require.Equal(t, ChangeEntry{Path: "b.txt", Status: StatusModified, Code: " M"}, entries[1])
		require.Equal(t, ChangeEntry{Path: "c.txt", Status: StatusAdded, Code: "A "}, entries[2])
		require.Equal(t, ChangeEntry{Path: "d.txt", Status: StatusDeleted, Code: "D "}, entries[3])
	})

	t.Run("distinguishes staged from unstaged entries by code", func(t *testing.T) {
		entries := parseStatus("M  staged.txt\n M unstaged.txt\nMM both.txt\n?? new.txt\n")

		require.Len(t, entries, 4)
		require.True(t, entries[0].Staged())
		require.False(t, entries[1].Staged())
		require.True(t, entries[2].Staged())
		require.False(t, entries[3].Staged())
	})

	t.Run("recognizes renamed, copied, and unmerged codes", func(t *testing.T) {
		raw := "R  old.txt -> new.txt\nC  base.txt -> copy.txt\nUU conflict.txt\n"

		entries := parseStatus(raw)

		require.Len(t, entries, 3)
		require.Equal(t, StatusRenamed, entries[0].Status)
		require.Equal(t, StatusCopied, entries[1].Status)
		require.Equal(t, StatusUnmerged, entries[2].Status)
	})

	t.Run("tags unrecognized codes as unknown instead of failing", func(t *testing.T) {
		entries := parseStatus("!! vendor/\n")

		require.Len(t, entries, 1)
		require.Equal(t, StatusUnknown, entries[0].Status)
		require.Equal(t, "vendor/", entries[0].Path)
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		require.Empty(t, parseStatus(""))
		require.Empty(t, parseStatus("\n\n"))
	})

	t.Run("preserves spaces inside paths", func(t *testing.T) {
		entries := parseStatus(" M dir/my file.txt\n")

		require.Len(t, entries, 1)
		require.Equal(t, "dir/my file.txt", entries[0].Path)
	})

	t.Run("is idempotent across invocations", func(t *testing.T) {
		raw := "?? a.txt\n M b.txt\n"

		first := parseStatus(raw)
		second := parseStatus(raw)

		require.Equal(t, first, second)
	})
}
