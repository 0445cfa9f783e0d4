// Package cmdexec runs external tools (the CDK toolkit, mostly) with
// captured stderr and structured debug logging.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Error reports a failed external command with enough context to rerun it
// by hand.
type Error struct {
	Cmd      string
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("(in %s) %s %s", e.Dir, e.Cmd, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("%s: exit %d\n%s", msg, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("%s: exit %d", msg, e.ExitCode)
}

// Executor runs commands in a fixed working directory.
type Executor struct {
	dir string
	log *zap.Logger
}

// New returns an Executor rooted at dir, which must be absolute so failures
// report an unambiguous location.
func New(dir string, log *zap.Logger) (*Executor, error) {
	if !filepath.IsAbs(dir) {
		return nil, errors.Newf("cmdexec: dir must be absolute, got %q", dir)
	}
	return &Executor{dir: dir, log: log}, nil
}

// Run executes a command interactively, streaming the standard streams to
// the terminal.
func (x *Executor) Run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = x.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)

	start := time.Now()
	x.log.Debug("running command",
		zap.String("cmd", name), zap.Strings("args", args), zap.String("dir", x.dir))

	err := cmd.Run()
	x.log.Debug("command finished",
		zap.String("cmd", name), zap.Duration("took", time.Since(start)), zap.Error(err))
	if err != nil {
		return x.wrapErr(name, args, err, stderr.String())
	}
	return nil
}

// Output executes a command and returns its stdout.
func (x *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = x.dir
	cmd.Stderr = &stderr

	start := time.Now()
	x.log.Debug("running command",
		zap.String("cmd", name), zap.Strings("args", args), zap.String("dir", x.dir))

	out, err := cmd.Output()
	x.log.Debug("command finished",
		zap.String("cmd", name), zap.Duration("took", time.Since(start)), zap.Error(err))
	if err != nil {
		return "", x.wrapErr(name, args, err, stderr.String())
	}
	return string(out), nil
}

func (x *Executor) wrapErr(name string, args []string, err error, stderr string) error {
	exitCode := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		if stderr == "" {
			stderr = string(exitErr.Stderr)
		}
	}
	return &Error{
		Cmd:      name,
		Args:     args,
		Dir:      x.dir,
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}
