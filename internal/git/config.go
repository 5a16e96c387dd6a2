package git

import (
	"context"
	"fmt"
)

// ConfigGet returns the value of a config key. A missing key is a normal
// negative answer: the second return value is false and no error is
// reported.
func (r *Repo) ConfigGet(ctx context.Context, key string) (string, bool, error) {
	out, err := r.run(ctx, "config", "--get", key)
	if err != nil {
		// An unset key exits 1 with empty stderr.
		if benignSilent(err, configNotFoundPatterns) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get config %s: %w", key, err)
	}
	return out, true, nil
}

// ConfigSet sets a config key in the repository's local configuration.
func (r *Repo) ConfigSet(ctx context.Context, key, value string) error {
	if _, err := r.run(ctx, "config", key, value); err != nil {
		return fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return nil
}

// UserName returns the configured user.name, or empty when unset.
func (r *Repo) UserName(ctx context.Context) (string, error) {
	name, _, err := r.ConfigGet(ctx, "user.name")
	return name, err
}

// UserEmail returns the configured user.email, or empty when unset.
func (r *Repo) UserEmail(ctx context.Context) (string, error) {
	email, _, err := r.ConfigGet(ctx, "user.email")
	return email, err
}
