package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner runs an external command in dir and reports its exit code. The
// error is reserved for commands that could not be started at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// ExecRunner runs commands with os/exec and streams their output.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
}

// Run starts name with args in dir and waits for it.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"dir":     dir,
			"command": strings.Join(append([]string{name}, args...), " "),
		}).Debug("running command")
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", name, err)
}

// ProcessError reports a child process that exited with a non-zero code.
type ProcessError struct {
	Command string
	Code    int
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// ExitCode returns the child's exit code.
func (e *ProcessError) ExitCode() int { return e.Code }
