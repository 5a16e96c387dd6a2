package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// stashLinePattern matches one `stash list` line: the index and the
// free-form description.
var stashLinePattern = regexp.MustCompile(`^stash@\{(\d+)\}: (.*)$`)

// Stashes returns all stash entries, newest first.
func (r *Repo) Stashes(ctx context.Context) ([]Stash, error) {
	out, err := r.runRaw(ctx, "stash", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}
	return parseStashes(out), nil
}

// StashPush stashes the working tree, with an optional message.
func (r *Repo) StashPush(ctx context.Context, message string) error {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	if _, err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to push stash: %w", err)
	}
	return nil
}

// StashApply applies the stash at index without dropping it.
func (r *Repo) StashApply(ctx context.Context, index int) error {
	if _, err := r.run(ctx, "stash", "apply", stashRef(index)); err != nil {
		return fmt.Errorf("failed to apply stash %d: %w", index, err)
	}
	return nil
}

// StashDrop removes the stash at index.
func (r *Repo) StashDrop(ctx context.Context, index int) error {
	if _, err := r.run(ctx, "stash", "drop", stashRef(index)); err != nil {
		return fmt.Errorf("failed to drop stash %d: %w", index, err)
	}
	return nil
}

func stashRef(index int) string {
	return fmt.Sprintf("stash@{%d}", index)
}

// parseStashes extracts `stash@{N}: description` lines. Lines that do not
// match are skipped; the full accumulated list is always returned.
func parseStashes(raw string) []Stash {
	stashes := []Stash{}
	for _, line := range strings.Split(raw, "\n") {
		match := stashLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		stashes = append(stashes, Stash{
			Index:       index,
			Description: match[2],
			Ref:         stashRef(index),
		})
	}
	return stashes
}
