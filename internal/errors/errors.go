// Package errors provides sentinel errors and custom error types for gitward.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrTimeout indicates that a command exceeded its allotted duration
	ErrTimeout = errors.New("command timed out")

	// ErrNotRepository indicates that a directory is not inside a git repository
	ErrNotRepository = errors.New("not a git repository")

	// ErrObjectNotFound indicates that a commit, tag, or blob does not exist
	ErrObjectNotFound = errors.New("object not found")

	// ErrConfigKeyNotFound indicates that a config key is not set
	ErrConfigKeyNotFound = errors.New("config key not found")
)

// UsageError represents a caller precondition violation. It is raised before
// any process is spawned and is never retried.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Message)
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// SpawnError represents a failure to launch the external tool at all
// (missing binary, permission denied). It is always fatal and is never
// classified as a benign result.
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(tool string, err error) *SpawnError {
	return &SpawnError{Tool: tool, Err: err}
}

// CommandError represents a command that ran and exited non-zero. Stderr is
// preserved verbatim so callers can diagnose or classify the failure.
type CommandError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s command failed (exit %d)", e.Tool, e.ExitCode)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(": %s %s", e.Tool, strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports ErrTimeout when the underlying cause was a deadline expiry, so
// callers can distinguish retryable timeouts from ordinary failures.
func (e *CommandError) Is(target error) bool {
	return target == ErrTimeout && errors.Is(e.Err, ErrTimeout)
}

// NewCommandError creates a new CommandError
func NewCommandError(tool string, args []string, exitCode int, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Tool:     tool,
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// ParseError represents command output that was structurally inconsistent
// with the shape the command is documented to emit.
type ParseError struct {
	Kind   string // which parser rejected the input
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s output: %s", e.Kind, e.Detail)
}

// NewParseError creates a new ParseError
func NewParseError(kind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
