package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// remoteLinePattern matches one `remote -v` line: name, url, and the
// parenthesized type token.
var remoteLinePattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\((\w+)\)$`)

// Remotes returns every configured remote endpoint. Each remote typically
// appears twice, once for fetch and once for push.
func (r *Repo) Remotes(ctx context.Context) ([]Remote, error) {
	out, err := r.runRaw(ctx, "remote", "-v")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return parseRemotes(out), nil
}

// AddRemote registers a new remote.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoveRemote removes a remote and its tracking refs.
func (r *Repo) RemoveRemote(ctx context.Context, name string) error {
	if _, err := r.run(ctx, "remote", "remove", name); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}

// parseRemotes extracts well-formed `name url (type)` lines. Malformed
// lines are skipped rather than fatal, and the accumulated list is always
// returned in full.
func parseRemotes(raw string) []Remote {
	remotes := []Remote{}
	for _, line := range strings.Split(raw, "\n") {
		match := remoteLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		remotes = append(remotes, Remote{
			Name: match[1],
			URL:  match[2],
			Type: match[3],
		})
	}
	return remotes
}
