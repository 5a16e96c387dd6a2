package git

import (
	"context"
	"fmt"
	"strings"
)

// Branches returns all local branch names, in git's emission order, with
// the current-branch marker stripped.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	out, err := r.runRaw(ctx, "branch", "--list")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return parseBranches(out), nil
}

// CurrentBranch returns the checked-out branch name, or the empty string
// when HEAD is detached.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return out, nil
}

// CreateBranch creates a branch at from (HEAD when empty) without checking
// it out.
func (r *Repo) CreateBranch(ctx context.Context, name, from string) error {
	args := []string{"branch", name}
	if from != "" {
		args = append(args, from)
	}
	if _, err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// SwitchBranch checks out an existing branch, or creates it first when
// create is true.
func (r *Repo) SwitchBranch(ctx context.Context, name string, create bool) error {
	args := []string{"checkout"}
	if create {
		args = append(args, "-b")
	}
	args = append(args, name)
	if _, err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to switch to branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch.
func (r *Repo) DeleteBranch(ctx context.Context, name string) error {
	if _, err := r.run(ctx, "branch", "-D", name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// MergeBase returns the best common ancestor of two revisions.
func (r *Repo) MergeBase(ctx context.Context, rev1, rev2 string) (string, error) {
	out, err := r.run(ctx, "merge-base", rev1, rev2)
	if err != nil {
		return "", fmt.Errorf("failed to get merge base of %s and %s: %w", rev1, rev2, err)
	}
	return out, nil
}

// IsAncestor reports whether ancestor is reachable from descendant.
func (r *Repo) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	result, err := r.execute(ctx, "merge-base", "--is-ancestor", ancestor, descendant)
	if err != nil {
		return false, fmt.Errorf("failed to check ancestry: %w", err)
	}
	return result.ExitCode == 0, nil
}

// parseBranches extracts branch names from `branch --list` output, one per
// line, dropping blanks and the "* " marker on the current branch.
func parseBranches(raw string) []string {
	branches := []string{}
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "* "))
		if name != "" {
			branches = append(branches, name)
		}
	}
	return branches
}
