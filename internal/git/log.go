package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	warderrors "gitward.dev/gitward/internal/errors"
)

// DefaultSentinel delimits log records in the stream. Callers can override
// it when their commit bodies could contain the default marker.
const DefaultSentinel = "<END>"

// logRecordFields is the number of positional lines before the body:
// hash, author, email, epoch seconds, subject.
const logRecordFields = 5

// LogOptions configures a log query.
type LogOptions struct {
	// Ref limits the log to commits reachable from a ref. Empty means
	// HEAD.
	Ref string

	// MaxCount limits the number of records. Zero means no limit.
	MaxCount int

	// Path limits the log to commits touching one path.
	Path string

	// Sentinel overrides DefaultSentinel as the end-of-record marker.
	Sentinel string
}

// Log returns commit records for the repository, newest first.
func (r *Repo) Log(ctx context.Context, opts LogOptions) ([]Commit, error) {
	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	args := []string{"log", "--pretty=format:%H%n%an%n%ae%n%at%n%s%n%b" + sentinel}
	if opts.MaxCount > 0 {
		args = append(args, fmt.Sprintf("-n%d", opts.MaxCount))
	}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}

	out, err := r.runRaw(ctx, args...)
	if err != nil {
		if benign(err, objectNotFoundPatterns) || benign(err, emptyHistoryPatterns) {
			// Empty repository or unknown ref: no commits to report.
			return []Commit{}, nil
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	return parseCommits(out, sentinel)
}

// CommitHistory returns the subjects of the most recent commits reachable
// from ref, newest first.
func (r *Repo) CommitHistory(ctx context.Context, ref string, limit int) ([]string, error) {
	commits, err := r.Log(ctx, LogOptions{Ref: ref, MaxCount: limit})
	if err != nil {
		return nil, err
	}
	subjects := make([]string, 0, len(commits))
	for _, commit := range commits {
		subjects = append(subjects, commit.Subject)
	}
	return subjects, nil
}

// CommitExists reports whether hash names an existing commit object.
func (r *Repo) CommitExists(ctx context.Context, hash string) (bool, error) {
	if strings.TrimSpace(hash) == "" {
		return false, warderrors.NewUsageError("commit hash is required")
	}
	_, err := r.run(ctx, "cat-file", "-e", hash+"^{commit}")
	if err != nil {
		if benignSilent(err, objectNotFoundPatterns) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CommitMessage returns the full message (subject and body) of one commit.
func (r *Repo) CommitMessage(ctx context.Context, hash string) (string, error) {
	if strings.TrimSpace(hash) == "" {
		return "", warderrors.NewUsageError("commit hash is required")
	}
	out, err := r.run(ctx, "log", "-1", "--pretty=format:%B", hash)
	if err != nil {
		if benign(err, objectNotFoundPatterns) {
			return "", warderrors.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to get commit message: %w", err)
	}
	return out, nil
}

// Head returns the hash of the latest commit on the current branch.
func (r *Repo) Head(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return out, nil
}

// Show returns the raw output of `git show` for a ref.
func (r *Repo) Show(ctx context.Context, ref string) (string, error) {
	out, err := r.runRaw(ctx, "show", ref)
	if err != nil {
		if benign(err, objectNotFoundPatterns) {
			return "", warderrors.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to show %s: %w", ref, err)
	}
	return out, nil
}

// FileAtRevision returns the content of path as it existed at ref.
func (r *Repo) FileAtRevision(ctx context.Context, ref, path string) (string, error) {
	out, err := r.runRaw(ctx, "show", ref+":"+path)
	if err != nil {
		if benign(err, pathNotFoundPatterns) {
			return "", warderrors.ErrObjectNotFound
		}
		return "", fmt.Errorf("failed to read %s at %s: %w", path, ref, err)
	}
	return out, nil
}

// Blame returns the raw blame output for a path.
func (r *Repo) Blame(ctx context.Context, path string) (string, error) {
	out, err := r.runRaw(ctx, "blame", "--", path)
	if err != nil {
		return "", fmt.Errorf("failed to blame %s: %w", path, err)
	}
	return out, nil
}

// parseCommits splits sentinel-delimited log output into commit records.
// Each record carries five positional lines (hash, author, email, epoch
// seconds, subject) followed by the body. A record with fewer lines is a
// parse error, never a silently dropped or partial record.
func parseCommits(raw, sentinel string) ([]Commit, error) {
	commits := []Commit{}
	for _, chunk := range strings.Split(raw, sentinel) {
		chunk = strings.TrimLeft(chunk, "\n")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		if len(lines) < logRecordFields {
			return nil, warderrors.NewParseError("log",
				"record has %d lines, expected at least %d", len(lines), logRecordFields)
		}
		epoch, err := strconv.ParseInt(strings.TrimSpace(lines[3]), 10, 64)
		if err != nil {
			return nil, warderrors.NewParseError("log",
				"invalid author timestamp %q", lines[3])
		}
		commits = append(commits, Commit{
			Hash:      strings.TrimSpace(lines[0]),
			Author:    lines[1],
			Email:     lines[2],
			Timestamp: time.Unix(epoch, 0),
			Subject:   lines[4],
			Body:      strings.TrimSpace(strings.Join(lines[logRecordFields:], "\n")),
		})
	}
	return commits, nil
}
