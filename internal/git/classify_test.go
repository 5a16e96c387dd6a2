package git

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	warderrors "gitward.dev/gitward/internal/errors"
)

func TestBenign(t *testing.T) {
	t.Run("matches a pattern in stderr case-insensitively", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"cat-file", "-e", "deadbeef"}, 128,
			"", "fatal: Not a valid object name deadbeef", nil)

		require.True(t, benign(err, objectNotFoundPatterns))
	})

	t.Run("does not match patterns from another operation's table", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"commit", "-m", "x"}, 1,
			"", "fatal: Not a valid object name deadbeef", nil)

		// A commit failure is never classified with the config table.
		require.False(t, benign(err, configNotFoundPatterns))
	})

	t.Run("recognizes a branch with no commits yet", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"log"}, 128,
			"", "fatal: your current branch 'main' does not have any commits yet", nil)

		require.True(t, benign(err, emptyHistoryPatterns))
		require.False(t, benign(err, objectNotFoundPatterns))
	})

	t.Run("never classifies a spawn failure as benign", func(t *testing.T) {
		err := warderrors.NewSpawnError("git", fmt.Errorf("executable not found"))

		require.False(t, benign(err, objectNotFoundPatterns))
	})

	t.Run("never classifies a timeout as benign", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"fetch"}, -1, "", "",
			fmt.Errorf("%w after 60s", warderrors.ErrTimeout))

		require.False(t, benign(err, objectNotFoundPatterns))
		require.ErrorIs(t, err, warderrors.ErrTimeout)
	})

	t.Run("matches nothing with a nil table", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"status"}, 1, "", "anything", nil)

		require.False(t, benign(err, nil))
	})
}

func TestBenignSilent(t *testing.T) {
	t.Run("treats a bare exit 1 with empty stderr as benign", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"config", "--get", "user.name"}, 1,
			"", "", nil)

		require.True(t, benignSilent(err, configNotFoundPatterns))
	})

	t.Run("still matches explicit patterns", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"config", "--get", "x"}, 1,
			"", "error: key does not exist", nil)

		require.True(t, benignSilent(err, configNotFoundPatterns))
	})

	t.Run("propagates a non-empty unmatched stderr", func(t *testing.T) {
		err := warderrors.NewCommandError("git", []string{"config", "--get", "x"}, 128,
			"", "fatal: unable to read config file", nil)

		require.False(t, benignSilent(err, configNotFoundPatterns))
	})
}
