package git

import (
	"errors"
	"strings"

	warderrors "gitward.dev/gitward/internal/errors"
)

// Benign stderr patterns, one table per calling operation. The same
// substring can mean different things for different commands, so tables are
// never shared across unrelated operations.
var (
	// rev-parse and friends when run outside a work tree.
	notRepositoryPatterns = []string{
		"not a git repository",
	}

	// cat-file / rev-parse existence probes for missing objects.
	objectNotFoundPatterns = []string{
		"not a valid object name",
		"unknown revision or path",
		"could not get object info",
		"does not exist",
	}

	// log on a branch with no commits yet. Distinct wording from the
	// unknown-ref case, so it needs its own entry.
	emptyHistoryPatterns = []string{
		"does not have any commits",
	}

	// config --get for an unset key exits 1 with no stderr at all.
	configNotFoundPatterns = []string{
		"key does not exist",
	}

	// show / cat-file for a path missing at a revision.
	pathNotFoundPatterns = []string{
		"does not exist",
		"exists on disk, but not in",
		"invalid object name",
	}
)

// benign reports whether err is a non-zero exit whose stderr matches one of
// the given patterns. Spawn failures and timeouts are never benign, and a
// nil table matches nothing.
func benign(err error, patterns []string) bool {
	if errors.Is(err, warderrors.ErrTimeout) {
		return false
	}
	var cmdErr *warderrors.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	stderr := strings.ToLower(cmdErr.Stderr)
	for _, pattern := range patterns {
		if strings.Contains(stderr, pattern) {
			return true
		}
	}
	return false
}

// benignSilent is benign extended to commands whose negative answer is a
// bare exit 1 with empty stderr (e.g. config --get, cat-file -e).
func benignSilent(err error, patterns []string) bool {
	if benign(err, patterns) {
		return true
	}
	var cmdErr *warderrors.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Err == nil {
		return strings.TrimSpace(cmdErr.Stderr) == ""
	}
	return false
}
