// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/choria-io/execvars/model"
)

const ExecutorName = "shell"

var shellPath = "/bin/sh"

// Executor runs command sequences under the system shell so pipelines,
// redirection and builtins all work, the command string is passed to the
// shell verbatim
type Executor struct {
	log    model.Logger
	runner model.CommandStreamer
}

func NewShellExecutor(log model.Logger, runner model.CommandStreamer) (*Executor, error) {
	return &Executor{log: log, runner: runner}, nil
}

func (e *Executor) Execute(ctx context.Context, command string, timeout time.Duration, sink io.Writer) error {
	if e.runner == nil {
		return fmt.Errorf("%w: no command runner configured", model.ErrExecInvalid)
	}

	if command == "" {
		return fmt.Errorf("%w: no command to execute", model.ErrNotSupported)
	}

	return e.runner.StreamWithOptions(ctx, model.ExecOptions{
		Command: shellPath,
		Args:    append([]string{}, "-c", command),
		Timeout: timeout,
	}, sink)
}

func (e *Executor) Name() string {
	return ExecutorName
}
