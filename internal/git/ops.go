package git

import (
	"context"
	"fmt"
)

// PullOptions configures a pull.
type PullOptions struct {
	Remote string
	Branch string
	Rebase bool
	FFOnly bool
}

// pullArgs builds the argument vector for a pull. Branch is only meaningful
// together with a remote, matching git's own positional grammar.
func pullArgs(opts PullOptions) []string {
	args := []string{"pull"}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.FFOnly {
		args = append(args, "--ff-only")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Branch != "" {
			args = append(args, opts.Branch)
		}
	}
	return args
}

// Pull fetches from a remote and integrates into the current branch.
func (r *Repo) Pull(ctx context.Context, opts PullOptions) error {
	if _, err := r.run(ctx, pullArgs(opts)...); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// PushOptions configures a push.
type PushOptions struct {
	Remote         string
	Branch         string
	Force          bool
	ForceWithLease bool
	SetUpstream    bool
	Tags           bool
}

// pushArgs builds the argument vector for a push. Force wins over
// ForceWithLease when both are set; exactly one force flag is ever emitted.
func pushArgs(opts PushOptions) []string {
	args := []string{"push"}
	if opts.Force {
		args = append(args, "--force")
	} else if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Branch != "" {
			args = append(args, opts.Branch)
		}
	}
	return args
}

// Push sends local commits to a remote.
func (r *Repo) Push(ctx context.Context, opts PushOptions) error {
	if _, err := r.run(ctx, pushArgs(opts)...); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

// FetchOptions configures a fetch.
type FetchOptions struct {
	Remote string
	All    bool
	Prune  bool
	Tags   bool
}

// fetchArgs builds the argument vector for a fetch. All suppresses the
// positional remote, since git rejects the combination.
func fetchArgs(opts FetchOptions) []string {
	args := []string{"fetch"}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if opts.Remote != "" && !opts.All {
		args = append(args, opts.Remote)
	}
	return args
}

// Fetch downloads objects and refs from a remote.
func (r *Repo) Fetch(ctx context.Context, opts FetchOptions) error {
	if _, err := r.run(ctx, fetchArgs(opts)...); err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// MergeOptions configures a merge.
type MergeOptions struct {
	NoFF    bool
	Squash  bool
	Message string
}

// mergeArgs builds the argument vector for merging ref.
func mergeArgs(ref string, opts MergeOptions) []string {
	args := []string{"merge"}
	if opts.NoFF {
		args = append(args, "--no-ff")
	}
	if opts.Squash {
		args = append(args, "--squash")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	return append(args, ref)
}

// Merge integrates ref into the current branch.
func (r *Repo) Merge(ctx context.Context, ref string, opts MergeOptions) error {
	if _, err := r.run(ctx, mergeArgs(ref, opts)...); err != nil {
		return fmt.Errorf("failed to merge %s: %w", ref, err)
	}
	return nil
}

// TagOptions configures tag creation.
type TagOptions struct {
	// Message makes the tag annotated.
	Message string

	// Ref is the commit to tag. Empty means HEAD.
	Ref string
}

// tagArgs builds the argument vector for creating a tag.
func tagArgs(name string, opts TagOptions) []string {
	args := []string{"tag"}
	if opts.Message != "" {
		args = append(args, "-a", "-m", opts.Message)
	}
	args = append(args, name)
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	return args
}

// Tag creates a tag, annotated when a message is given.
func (r *Repo) Tag(ctx context.Context, name string, opts TagOptions) error {
	if _, err := r.run(ctx, tagArgs(name, opts)...); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// ResetMode selects what a reset touches.
type ResetMode string

// Reset modes accepted by Reset.
const (
	ResetSoft  ResetMode = "soft"
	ResetMixed ResetMode = "mixed"
	ResetHard  ResetMode = "hard"
)

// resetArgs builds the argument vector for a reset. An empty mode emits no
// mode flag at all, leaving git's own mixed default in effect.
func resetArgs(ref string, mode ResetMode) []string {
	args := []string{"reset"}
	if mode != "" {
		args = append(args, "--"+string(mode))
	}
	return append(args, ref)
}

// Reset moves the current branch to ref. An empty mode defaults to mixed,
// matching git.
func (r *Repo) Reset(ctx context.Context, ref string, mode ResetMode) error {
	if _, err := r.run(ctx, resetArgs(ref, mode)...); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", ref, err)
	}
	return nil
}

// revertArgs builds the argument vector for a revert.
func revertArgs(ref string, noCommit bool) []string {
	args := []string{"revert", "--no-edit"}
	if noCommit {
		args = append(args, "--no-commit")
	}
	return append(args, ref)
}

// Revert creates a commit undoing ref. With noCommit the inverse change is
// left staged instead.
func (r *Repo) Revert(ctx context.Context, ref string, noCommit bool) error {
	if _, err := r.run(ctx, revertArgs(ref, noCommit)...); err != nil {
		return fmt.Errorf("failed to revert %s: %w", ref, err)
	}
	return nil
}

// cherryPickArgs builds the argument vector for a cherry-pick.
func cherryPickArgs(hash string, noCommit bool) []string {
	args := []string{"cherry-pick"}
	if noCommit {
		args = append(args, "--no-commit")
	}
	return append(args, hash)
}

// CherryPick applies the changes of one commit onto the current branch.
func (r *Repo) CherryPick(ctx context.Context, hash string, noCommit bool) error {
	if _, err := r.run(ctx, cherryPickArgs(hash, noCommit)...); err != nil {
		return fmt.Errorf("failed to cherry-pick %s: %w", hash, err)
	}
	return nil
}

// cleanArgs builds the argument vector for a clean.
func cleanArgs(directories bool) []string {
	args := []string{"clean", "-f"}
	if directories {
		args = append(args, "-d")
	}
	return args
}

// Clean removes untracked files from the working tree.
func (r *Repo) Clean(ctx context.Context, directories bool) error {
	if _, err := r.run(ctx, cleanArgs(directories)...); err != nil {
		return fmt.Errorf("failed to clean working tree: %w", err)
	}
	return nil
}
