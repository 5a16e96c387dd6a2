package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitOptions configures a commit.
type CommitOptions struct {
	// Message is the commit message. Empty or whitespace-only means a
	// message is derived from the pending changes.
	Message string

	// All stages tracked-file modifications before committing.
	All bool

	// AllowEmpty permits a commit with no changes.
	AllowEmpty bool

	// Amend replaces the tip commit instead of creating a new one.
	Amend bool

	// NoVerify skips pre-commit and commit-msg hooks.
	NoVerify bool
}

// Stage adds the given paths to the index. With no paths, everything is
// staged, untracked files included.
func (r *Repo) Stage(ctx context.Context, paths ...string) error {
	args := []string{"add"}
	if len(paths) == 0 {
		args = append(args, "-A")
	} else {
		args = append(args, "--")
		args = append(args, paths...)
	}
	if _, err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash. When
// opts.Message is empty a message is derived from the pending change list.
func (r *Repo) Commit(ctx context.Context, opts CommitOptions) (string, error) {
	message := strings.TrimSpace(opts.Message)
	if message == "" {
		entries, err := r.Status(ctx)
		if err != nil {
			return "", err
		}
		message = commitMessage(commitScope(entries, opts.All))
	}

	args := []string{"commit", "-m", message}
	if opts.All {
		args = append(args, "-a")
	}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.Amend {
		args = append(args, "--amend")
	}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}

	if _, err := r.run(ctx, args...); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return r.Head(ctx)
}

// commitScope narrows status entries to the files the commit will record.
// Untracked files never take part; without -a, neither do purely unstaged
// edits.
func commitScope(entries []ChangeEntry, all bool) []ChangeEntry {
	scoped := []ChangeEntry{}
	for _, entry := range entries {
		if entry.Status == StatusUntracked {
			continue
		}
		if !all && !entry.Staged() {
			continue
		}
		scoped = append(scoped, entry)
	}
	return scoped
}
