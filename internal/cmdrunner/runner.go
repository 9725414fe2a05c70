// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmdrunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"

	"github.com/choria-io/execvars/metrics"
	"github.com/choria-io/execvars/model"
)

// ChunkSize is the read size used while forwarding command output
const ChunkSize = 8192

var _ model.CommandStreamer = (*CommandRunner)(nil)

// CommandRunner executes system commands and streams their standard output
// to a sink as it is produced
type CommandRunner struct {
	logger model.Logger
}

// NewCommandRunner creates a new CommandRunner instance with the provided logger
func NewCommandRunner(log model.Logger) (*CommandRunner, error) {
	return &CommandRunner{logger: log}, nil
}

// StreamWithOptions runs one command and forwards its output to sink in
// fixed size chunks. With a zero timeout it blocks until the child exits
// on its own, otherwise the whole invocation is bounded by a wall clock
// deadline fixed at invocation start. The child is reaped on every exit
// path, no invocation leaves a zombie or an open pipe behind.
func (c *CommandRunner) StreamWithOptions(ctx context.Context, opts model.ExecOptions, sink io.Writer) error {
	if opts.Command == "" {
		return fmt.Errorf("%w: command not specified", model.ErrExecInvalid)
	}

	if opts.Timeout > 0 {
		return c.streamBounded(ctx, opts, sink)
	}

	return c.streamUnbounded(opts, sink)
}

// this path deliberately has no cancellation, a command that never exits
// blocks the caller indefinitely
func (c *CommandRunner) streamUnbounded(opts model.ExecOptions, sink io.Writer) error {
	cmd := exec.Command(opts.Command, opts.Args...)
	c.configure(cmd, opts)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, err)
	}

	c.logger.Debug("Running command", "command", opts.Command, "args", opts.Args)

	err = cmd.Start()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCommandNotFound, err)
	}

	ferr := c.forward(stdout, sink)
	if ferr != nil {
		// unblock a child stuck writing so Wait can reap it
		io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()

	return c.outcome(opts, ferr, waitErr)
}

func (c *CommandRunner) streamBounded(ctx context.Context, opts model.ExecOptions, sink io.Writer) error {
	start := time.Now()

	// the deadline is fixed here and bounds the whole invocation, chunks
	// that arrive in time do not extend it
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
	c.configure(cmd, opts)

	// children get their own process group so pipeline members holding the
	// output pipe die with the lead process
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error { return c.kill(cmd) }

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, err)
	}

	c.logger.Debug("Running command", "command", opts.Command, "args", opts.Args, "timeout", opts.Timeout)

	err = cmd.Start()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCommandNotFound, err)
	}

	ferr := c.forward(stdout, sink)
	if ferr != nil {
		// kill-if-alive, a failed read must not leave the child running
		c.kill(cmd)
	}

	waitErr := cmd.Wait()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		elapsed := time.Since(start).Round(time.Millisecond)
		c.logger.Error("Timeout exceeded for command", "timeout", opts.Timeout, "elapsed", elapsed, "command", opts.Command, "args", opts.Args)
		metrics.ExecTimeoutCount.WithLabelValues(opts.Command).Inc()

		return fmt.Errorf("%w: %v exceeded running %s", model.ErrDeadlineExceeded, opts.Timeout, opts.Command)
	}

	return c.outcome(opts, ferr, waitErr)
}

func (c *CommandRunner) forward(out io.Reader, sink io.Writer) error {
	buf := make([]byte, ChunkSize)

	for {
		n, err := out.Read(buf)
		if n > 0 && sink != nil {
			_, werr := sink.Write(buf[:n])
			if werr != nil {
				return fmt.Errorf("sink: %w", werr)
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// kill signals the whole process group, SIGKILL cannot be ignored
func (c *CommandRunner) kill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}

	return err
}

func (c *CommandRunner) outcome(opts model.ExecOptions, ferr error, waitErr error) error {
	if ferr != nil {
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, ferr)
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		// the output is the value, a non zero exit is recorded but does
		// not fail the request
		c.logger.Debug("Command exited non zero", "command", opts.Command, "exitcode", exitErr.ExitCode())
		return nil
	case waitErr != nil:
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, waitErr)
	}

	c.logger.Debug("Command finished", "command", opts.Command, "exitcode", 0)

	return nil
}

func (c *CommandRunner) configure(cmd *exec.Cmd, opts model.ExecOptions) {
	cmd.Env = []string{
		"PATH=/usr/bin:/bin:/usr/sbin:/sbin:/usr/local/bin:/usr/local/sbin",
		"LANG=C",
		"LC_ALL=C",
	}
	cmd.Env = append(cmd.Env, opts.Environment...)

	if opts.Cwd != "" {
		cmd.Dir = opts.Cwd
	} else {
		cmd.Dir = "/"
	}
}
