package git

import (
	"context"
	"fmt"
	"strings"
)

// Status returns one entry per changed file, in the order git emits them.
func (r *Repo) Status(ctx context.Context) ([]ChangeEntry, error) {
	out, err := r.runRaw(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parseStatus(out), nil
}

// IsClean reports whether the working tree has no pending changes.
func (r *Repo) IsClean(ctx context.Context) (bool, error) {
	entries, err := r.Status(ctx)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// UntrackedFiles returns the paths of files not known to git, honoring
// ignore rules.
func (r *Repo) UntrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}
	return splitLines(out), nil
}

// ConflictedFiles returns the paths of files with unresolved merge
// conflicts.
func (r *Repo) ConflictedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicted files: %w", err)
	}
	return splitLines(out), nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (r *Repo) HasStagedChanges(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return out != "", nil
}

// HasUnstagedChanges reports whether tracked files have unstaged edits.
func (r *Repo) HasUnstagedChanges(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return out != "", nil
}

// parseStatus turns `status --porcelain` output into change entries. Each
// non-blank line is a two-character status code, a space, and a path. The
// parser is total: unrecognized codes become StatusUnknown, never an error.
func parseStatus(raw string) []ChangeEntry {
	entries := []ChangeEntry{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" || len(line) < 3 {
			continue
		}
		code := line[:2]
		path := strings.TrimLeft(line[2:], " ")
		entries = append(entries, ChangeEntry{
			Path:   path,
			Status: statusTag(code),
			Code:   code,
		})
	}
	return entries
}

// statusTag maps a porcelain status code to a change tag. The untracked
// marker is checked first; otherwise the first non-space letter decides.
func statusTag(code string) ChangeStatus {
	if code == "??" {
		return StatusUntracked
	}
	switch trimmed := strings.TrimSpace(code); {
	case strings.HasPrefix(trimmed, "M"):
		return StatusModified
	case strings.HasPrefix(trimmed, "A"):
		return StatusAdded
	case strings.HasPrefix(trimmed, "D"):
		return StatusDeleted
	case strings.HasPrefix(trimmed, "R"):
		return StatusRenamed
	case strings.HasPrefix(trimmed, "C"):
		return StatusCopied
	case strings.HasPrefix(trimmed, "U"):
		return StatusUnmerged
	default:
		return StatusUnknown
	}
}

// splitLines splits trimmed output into non-empty lines, preserving order.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
