package clicheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-htgen/internal/logfields"
	"github.com/alnah/go-htgen/internal/process"
)

// Sentinel errors for execution failures.
var (
	ErrTimeout    = errors.New("executable did not finish in time")
	ErrExitStatus = errors.New("executable exited with non-zero status")
)

// killGrace bounds how long Wait may block on inherited pipes after the
// process group was killed.
const killGrace = 500 * time.Millisecond

// Runner runs an executable and returns its standard output.
type Runner interface {
	Run(ctx context.Context, exe string, args ...string) ([]byte, error)
}

// ExecRunner runs executables as child processes, each in its own process
// group, and hard-kills the group when Timeout expires.
type ExecRunner struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewExecRunner creates an ExecRunner. A non-positive timeout selects
// DefaultTimeout and a nil logger discards output.
func NewExecRunner(timeout time.Duration, logger *slog.Logger) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExecRunner{Timeout: timeout, Logger: logger}
}

// Run executes exe with args and returns what it printed on stdout.
// Returns ErrTimeout when the wait expires and ErrExitStatus when the program
// exits with a non-zero status.
func (r *ExecRunner) Run(ctx context.Context, exe string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, exe, args...) // #nosec G204 -- the executable under test is user-provided
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = killGrace

	start := time.Now()
	err := cmd.Run()
	r.Logger.Debug("executable finished",
		logfields.Executable(exe),
		slog.String("args", strings.Join(args, " ")),
		logfields.Bytes(stdout.Len()),
		logfields.Duration(time.Since(start)),
	)

	switch {
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return stdout.Bytes(), fmt.Errorf("%w: %s %s after %s",
			ErrTimeout, exe, strings.Join(args, " "), r.Timeout)
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), fmt.Errorf("%w: %s %s: exit code %d: %s",
				ErrExitStatus, exe, strings.Join(args, " "), exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("starting %s: %w", exe, err)
	}

	return stdout.Bytes(), nil
}

// Compile-time interface check.
var _ Runner = (*ExecRunner)(nil)
