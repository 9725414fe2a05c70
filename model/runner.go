// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"io"
	"time"
)

// ExecOptions describes one subprocess invocation
type ExecOptions struct {
	// Command is the path of the program to start
	Command string
	// Args are the program arguments
	Args []string
	// Cwd is the working directory, defaults to /
	Cwd string
	// Environment is added to the minimal environment children receive
	Environment []string
	// Timeout bounds the total wall clock time of the invocation, zero
	// means the invocation blocks until the child exits on its own
	Timeout time.Duration
}

// CommandStreamer starts subprocesses and streams their standard output
// to a sink as it is produced, the child is reaped on every exit path
type CommandStreamer interface {
	StreamWithOptions(ctx context.Context, opts ExecOptions, sink io.Writer) error
}

// Executor turns a bound command string into a subprocess invocation
// using some strategy, for example via a shell or by direct argv execution
type Executor interface {
	Execute(ctx context.Context, command string, timeout time.Duration, sink io.Writer) error
	Name() string
}

// ExecutorFactory creates executors and reports if the strategy can be
// used on this host, lower priorities are preferred during selection
type ExecutorFactory interface {
	Name() string
	New(log Logger, runner CommandStreamer) (Executor, error)
	IsAvailable() (bool, int, error)
}
