package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"

	warderrors "gitward.dev/gitward/internal/errors"
	"gitward.dev/gitward/internal/run"
)

// Options configures a Repo. All fields are read once at construction; the
// resulting Repo is immutable and safe for concurrent use.
type Options struct {
	// Dir is the repository working directory. Required.
	Dir string

	// Tool is the git executable name or path. Defaults to "git".
	Tool string

	// Env is merged over the ambient process environment for every
	// command spawned by this Repo.
	Env map[string]string

	// Timeout is the default per-command timeout. Zero means the runner
	// default of 60s.
	Timeout time.Duration

	// Logger receives debug records for every executed command.
	Logger *slog.Logger
}

// Repo is the facade over one git repository. It composes the process
// runner, the output parsers, and the stderr classification tables into the
// public operation set.
type Repo struct {
	dir    string
	runner *run.Runner
	logger *slog.Logger
}

// Open creates a Repo for an existing repository directory. It does not
// touch the filesystem; the first operation will surface any problem.
func Open(opts Options) (*Repo, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, warderrors.NewUsageError("repository directory is required")
	}
	var env []string
	if opts.Env != nil {
		env = environWith(opts.Env)
	}
	runner := run.New(run.Config{
		Tool:    opts.Tool,
		Dir:     opts.Dir,
		Env:     env,
		Timeout: opts.Timeout,
		Logger:  opts.Logger,
	})
	return &Repo{dir: opts.Dir, runner: runner, logger: opts.Logger}, nil
}

// Dir returns the repository working directory.
func (r *Repo) Dir() string {
	return r.dir
}

// DiscoverRoot walks up from dir to find the enclosing repository root,
// the same way the CLI locates a repository when run from a subdirectory.
func DiscoverRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", warderrors.ErrNotRepository, dir)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// InitOptions configures repository initialization.
type InitOptions struct {
	Bare          bool
	InitialBranch string
}

// Init creates a new repository in dir and returns a Repo for it.
func Init(ctx context.Context, dir string, opts Options, initOpts InitOptions) (*Repo, error) {
	opts.Dir = dir
	repo, err := Open(opts)
	if err != nil {
		return nil, err
	}
	args := []string{"init"}
	if initOpts.Bare {
		args = append(args, "--bare")
	}
	if initOpts.InitialBranch != "" {
		args = append(args, "-b", initOpts.InitialBranch)
	}
	if _, err := repo.run(ctx, args...); err != nil {
		return nil, err
	}
	return repo, nil
}

// CloneOptions configures a clone.
type CloneOptions struct {
	Depth  int
	Branch string
	Bare   bool
}

// Clone clones url into dir and returns a Repo for the clone. The command
// runs from the parent of dir so git can create the target directory.
func Clone(ctx context.Context, url, dir string, opts Options, cloneOpts CloneOptions) (*Repo, error) {
	opts.Dir = dir
	repo, err := Open(opts)
	if err != nil {
		return nil, err
	}
	args := []string{"clone"}
	if cloneOpts.Depth > 0 {
		args = append(args, "--depth", fmt.Sprintf("%d", cloneOpts.Depth))
	}
	if cloneOpts.Branch != "" {
		args = append(args, "--branch", cloneOpts.Branch)
	}
	if cloneOpts.Bare {
		args = append(args, "--bare")
	}
	args = append(args, url, dir)

	_, err = repo.runner.Execute(ctx, run.Request{
		Args:       args,
		Dir:        filepath.Dir(dir),
		StrictExit: true,
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// IsRepository reports whether the configured directory is inside a git
// work tree. A "not a git repository" failure is a normal negative answer.
func (r *Repo) IsRepository(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		if benign(err, notRepositoryPatterns) {
			return false, nil
		}
		return false, err
	}
	return out == "true", nil
}

// Root returns the absolute path of the repository's top-level directory.
func (r *Repo) Root(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		if benign(err, notRepositoryPatterns) {
			return "", warderrors.ErrNotRepository
		}
		return "", err
	}
	return out, nil
}

// Version returns the git version, reduced to the dotted numeric form when
// one can be extracted from the banner.
func (r *Repo) Version(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "version")
	if err != nil {
		return "", err
	}
	return parseVersion(out), nil
}

// versionPattern extracts a dotted three-part numeric version from the
// free-text version banner.
var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// parseVersion reduces a version banner to its dotted numeric form. Banner
// formats vary across releases, so a non-matching banner is returned
// trimmed rather than rejected.
func parseVersion(raw string) string {
	if match := versionPattern.FindString(raw); match != "" {
		return match
	}
	return strings.TrimSpace(raw)
}

// run executes git with the given arguments in strict mode and returns
// trimmed stdout.
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	out, err := r.runRaw(ctx, args...)
	return strings.TrimSpace(out), err
}

// runRaw is run without output trimming, for parsers that care about
// leading whitespace.
func (r *Repo) runRaw(ctx context.Context, args ...string) (string, error) {
	result, err := r.runner.Execute(ctx, run.Request{Args: args, StrictExit: true})
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// execute runs git without strict exit checking, handing the full result to
// the caller for inspection.
func (r *Repo) execute(ctx context.Context, args ...string) (run.Result, error) {
	return r.runner.Execute(ctx, run.Request{Args: args})
}

// environWith snapshots the ambient environment with overlay entries merged
// over it, so the runner never consults the global environment again.
func environWith(overlay map[string]string) []string {
	env := os.Environ()
	merged := make([]string, 0, len(env)+len(overlay))
	for _, entry := range env {
		name := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			name = entry[:i]
		}
		if _, ok := overlay[name]; !ok {
			merged = append(merged, entry)
		}
	}
	for name, value := range overlay {
		merged = append(merged, name+"="+value)
	}
	return merged
}
