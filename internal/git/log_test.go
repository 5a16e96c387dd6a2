package git

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	warderrors "gitward.dev/gitward/internal/errors"
)

func logRecord(hash, author, email, epoch, subject, body string) string {
	lines := []string{hash, author, email, epoch, subject}
	if body != "" {
		lines = append(lines, body)
	}
	return strings.Join(lines, "\n") + DefaultSentinel
}

func TestParseCommits(t *testing.T) {
	t.Run("parses well-formed records in emission order", func(t *testing.T) {
		raw := logRecord("a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2", "Alice", "alice@example.com", "1700000000", "feat: add parser", "") +
			"\n" +
			logRecord("0123456789abcdef0123456789abcdef01234567", "Bob", "bob@example.com", "1700000100", "fix: trailing newline", "Longer explanation.\nSecond line.")

		commits, err := parseCommits(raw, DefaultSentinel)
		require.NoError(t, err)
		require.Len(t, commits, 2)

		require.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2", commits[0].Hash)
		require.Equal(t, "Alice", commits[0].Author)
		require.Equal(t, "alice@example.com", commits[0].Email)
		require.Equal(t, time.Unix(1700000000, 0), commits[0].Timestamp)
		require.Equal(t, "feat: add parser", commits[0].Subject)
		require.Empty(t, commits[0].Body)

		require.Equal(t, "Bob", commits[1].Author)
		require.Equal(t, "Longer explanation.\nSecond line.", commits[1].Body)
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		commits, err := parseCommits("", DefaultSentinel)
		require.NoError(t, err)
		require.Empty(t, commits)
	})

	t.Run("rejects a record with too few lines", func(t *testing.T) {
		raw := "a1b2c3\nAlice\nalice@example.com" + DefaultSentinel

		_, err := parseCommits(raw, DefaultSentinel)

		var parseErr *warderrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Equal(t, "log", parseErr.Kind)
	})

	t.Run("rejects a non-numeric timestamp", func(t *testing.T) {
		raw := logRecord("a1b2c3", "Alice", "alice@example.com", "yesterday", "subject", "")

		_, err := parseCommits(raw, DefaultSentinel)

		var parseErr *warderrors.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("honors a caller-supplied sentinel", func(t *testing.T) {
		raw := "abc123\nAlice\nalice@example.com\n1700000000\nsubject\n|EOR|"

		commits, err := parseCommits(raw, "|EOR|")
		require.NoError(t, err)
		require.Len(t, commits, 1)
		require.Equal(t, "subject", commits[0].Subject)
	})

	t.Run("is idempotent across invocations", func(t *testing.T) {
		raw := logRecord("abc123", "Alice", "a@example.com", "1700000000", "subject", "body")

		first, err := parseCommits(raw, DefaultSentinel)
		require.NoError(t, err)
		second, err := parseCommits(raw, DefaultSentinel)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
