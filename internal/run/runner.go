// Package run executes the external version-control tool as a subprocess and
// captures its outcome. It knows nothing about git's vocabulary: callers
// interpret exit codes and stderr themselves, or ask for strict mode where a
// non-zero exit is surfaced as an error.
package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	warderrors "gitward.dev/gitward/internal/errors"
)

// DefaultTimeout is the per-call timeout applied when a request does not
// carry its own.
const DefaultTimeout = 60 * time.Second

// DefaultTool is the executable resolved via PATH when none is configured.
const DefaultTool = "git"

// Config holds the immutable construction-time settings for a Runner.
type Config struct {
	// Tool is the executable name or path. Defaults to DefaultTool.
	Tool string

	// Dir is the default working directory for commands. Empty means the
	// process working directory.
	Dir string

	// Env is the base environment for spawned processes. When nil the
	// ambient process environment is snapshotted once at construction.
	Env []string

	// Timeout is the default per-call timeout. Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger receives debug records for every executed command. Nil
	// disables logging.
	Logger *slog.Logger
}

// Runner spawns one subprocess per Execute call. It holds no mutable state,
// so a single Runner is safe for concurrent use.
type Runner struct {
	tool    string
	dir     string
	baseEnv []string
	timeout time.Duration
	logger  *slog.Logger
}

// Request describes a single invocation. It is consumed by Execute and not
// retained afterwards.
type Request struct {
	// Args is the argument vector, excluding the tool name. Must be
	// non-empty.
	Args []string

	// Dir overrides the runner's default working directory.
	Dir string

	// Env is merged over the runner's base environment.
	Env map[string]string

	// Timeout overrides the runner's default timeout.
	Timeout time.Duration

	// StrictExit makes a non-zero exit code an error. When false the
	// caller inspects Result.ExitCode itself.
	StrictExit bool

	// Stdin is fed to the process when non-empty.
	Stdin string
}

// Result carries the fully drained output of one finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// New creates a Runner from cfg, snapshotting the ambient environment when
// cfg.Env is nil.
func New(cfg Config) *Runner {
	tool := cfg.Tool
	if tool == "" {
		tool = DefaultTool
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	env := cfg.Env
	if env == nil {
		env = os.Environ()
	}
	return &Runner{
		tool:    tool,
		dir:     cfg.Dir,
		baseEnv: env,
		timeout: timeout,
		logger:  cfg.Logger,
	}
}

// Tool returns the configured executable name or path.
func (r *Runner) Tool() string {
	return r.tool
}

// Dir returns the default working directory for commands.
func (r *Runner) Dir() string {
	return r.dir
}

// Execute runs the tool once and returns its drained output. The error is
// a *warderrors.UsageError for an empty argument vector, a
// *warderrors.SpawnError when the process could not be started, and a
// *warderrors.CommandError for timeouts or, in strict mode, non-zero exits.
func (r *Runner) Execute(ctx context.Context, req Request) (Result, error) {
	if len(req.Args) == 0 {
		return Result{}, warderrors.NewUsageError("empty argument vector")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.timeout
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.tool, req.Args...)
	cmd.Dir = r.dir
	if req.Dir != "" {
		cmd.Dir = req.Dir
	}
	cmd.Env = mergeEnv(r.baseEnv, req.Env)
	if req.Stdin != "" {
		cmd.Stdin = bytes.NewBufferString(req.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			r.log(ctx, req.Args, elapsed, -1, "timeout")
			return Result{}, warderrors.NewCommandError(
				r.tool, req.Args, exitCode(err), result.Stdout, result.Stderr,
				fmt.Errorf("%w after %s", warderrors.ErrTimeout, timeout))
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Process never ran: missing binary, permission denied.
			r.log(ctx, req.Args, elapsed, -1, "spawn failure")
			return Result{}, warderrors.NewSpawnError(r.tool, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.log(ctx, req.Args, elapsed, result.ExitCode, "")

	if result.ExitCode != 0 && req.StrictExit {
		return result, warderrors.NewCommandError(
			r.tool, req.Args, result.ExitCode, result.Stdout, result.Stderr, nil)
	}
	return result, nil
}

func (r *Runner) log(ctx context.Context, args []string, elapsed time.Duration, exit int, note string) {
	if r.logger == nil {
		return
	}
	attrs := []any{
		slog.String("tool", r.tool),
		slog.Any("args", args),
		slog.Duration("elapsed", elapsed),
		slog.Int("exit", exit),
	}
	if note != "" {
		attrs = append(attrs, slog.String("note", note))
	}
	r.logger.DebugContext(ctx, "executed command", attrs...)
}

// mergeEnv overlays entries from overlay onto a copy of base. Base entries
// with the same name are replaced, order otherwise preserved.
func mergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}
	merged := make([]string, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(overlay))
	for _, entry := range base {
		name := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			name = entry[:i]
		}
		if value, ok := overlay[name]; ok {
			merged = append(merged, name+"="+value)
			seen[name] = true
			continue
		}
		merged = append(merged, entry)
	}
	for name, value := range overlay {
		if !seen[name] {
			merged = append(merged, name+"="+value)
		}
	}
	return merged
}

// exitCode extracts the exit code from a command error, or -1 when the
// process was killed before reporting one.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
