package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStashes(t *testing.T) {
	t.Run("parses index, description, and canonical ref", func(t *testing.T) {
		raw := "stash@{0}: WIP on main: 1a2b3c4 latest work\n" +
			"stash@{1}: On feature: saved experiment\n"

		stashes := parseStashes(raw)

		require.Len(t, stashes, 2)
		require.Equal(t, 0, stashes[0].Index)
		require.Equal(t, "WIP on main: 1a2b3c4 latest work", stashes[0].Description)
		require.Equal(t, "stash@{0}", stashes[0].Ref)
		require.Equal(t, 1, stashes[1].Index)
		require.Equal(t, "stash@{1}", stashes[1].Ref)
	})

	t.Run("skips lines that are not stash entries", func(t *testing.T) {
		raw := "stash@{0}: WIP\nnot a stash line\n"

		stashes := parseStashes(raw)

		require.Len(t, stashes, 1)
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		require.Empty(t, parseStashes(""))
	})
}
