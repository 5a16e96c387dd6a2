package git

import (
	"context"
	"fmt"
	"strings"
)

// Worktrees returns one attribute map per linked worktree, parsed from the
// porcelain listing.
func (r *Repo) Worktrees(ctx context.Context) ([]WorktreeEntry, error) {
	out, err := r.runRaw(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktrees(out), nil
}

// AddWorktree checks out branch in a new worktree at path. When detach is
// true the worktree starts in detached HEAD state.
func (r *Repo) AddWorktree(ctx context.Context, path, branch string, detach bool) error {
	args := []string{"worktree", "add"}
	if detach {
		args = append(args, "--detach")
	}
	args = append(args, path)
	if branch != "" {
		args = append(args, branch)
	}
	if _, err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to add worktree at %s: %w", path, err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path, discarding local changes.
func (r *Repo) RemoveWorktree(ctx context.Context, path string) error {
	if _, err := r.run(ctx, "worktree", "remove", "--force", path); err != nil {
		return fmt.Errorf("failed to remove worktree at %s: %w", path, err)
	}
	return nil
}

// parseWorktrees splits porcelain output into blank-line-separated runs of
// `key value` lines, one attribute map per run. Value-less keys (bare,
// detached) map to the empty string.
func parseWorktrees(raw string) []WorktreeEntry {
	worktrees := []WorktreeEntry{}
	entry := WorktreeEntry{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(entry) > 0 {
				worktrees = append(worktrees, entry)
				entry = WorktreeEntry{}
			}
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		entry[key] = value
	}
	if len(entry) > 0 {
		worktrees = append(worktrees, entry)
	}
	return worktrees
}
