package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitward.dev/gitward/internal/errors"
)

func TestCommandError(t *testing.T) {
	t.Run("includes the command line and stderr in the message", func(t *testing.T) {
		err := errors.NewCommandError("git", []string{"status", "--porcelain"}, 128, "", "fatal: bad tree", nil)

		require.Contains(t, err.Error(), "git command failed (exit 128)")
		require.Contains(t, err.Error(), "git status --porcelain")
		require.Contains(t, err.Error(), "fatal: bad tree")
	})

	t.Run("matches ErrTimeout only when caused by one", func(t *testing.T) {
		timedOut := errors.NewCommandError("git", []string{"fetch"}, -1, "", "", errors.ErrTimeout)
		plain := errors.NewCommandError("git", []string{"fetch"}, 1, "", "", nil)

		require.ErrorIs(t, timedOut, errors.ErrTimeout)
		require.NotErrorIs(t, plain, errors.ErrTimeout)
	})

	t.Run("unwraps its cause", func(t *testing.T) {
		cause := stderrors.New("underlying")
		err := errors.NewCommandError("git", nil, 1, "", "", cause)

		require.ErrorIs(t, err, cause)
	})
}

func TestSpawnError(t *testing.T) {
	t.Run("names the tool and unwraps the launch failure", func(t *testing.T) {
		cause := stderrors.New("executable file not found in $PATH")
		err := errors.NewSpawnError("nope-git", cause)

		require.Contains(t, err.Error(), "failed to launch nope-git")
		require.ErrorIs(t, err, cause)
	})
}

func TestUsageError(t *testing.T) {
	t.Run("formats its message", func(t *testing.T) {
		err := errors.NewUsageError("option %s requires a value", "--repo")

		require.Equal(t, "usage error: option --repo requires a value", err.Error())
	})
}

func TestParseError(t *testing.T) {
	t.Run("names the parser that rejected the input", func(t *testing.T) {
		err := errors.NewParseError("log", "record has %d lines", 2)

		require.Equal(t, "failed to parse log output: record has 2 lines", err.Error())
	})
}
