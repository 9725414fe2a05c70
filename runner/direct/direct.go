// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package direct

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/choria-io/execvars/model"
)

const ExecutorName = "direct"

// Executor splits the command string using shell quoting rules and runs
// the resulting argv without a shell, suitable for simple commands that
// need no pipelines or redirection
type Executor struct {
	log    model.Logger
	runner model.CommandStreamer
}

func NewDirectExecutor(log model.Logger, runner model.CommandStreamer) (*Executor, error) {
	return &Executor{log: log, runner: runner}, nil
}

func (e *Executor) Execute(ctx context.Context, command string, timeout time.Duration, sink io.Writer) error {
	if e.runner == nil {
		return fmt.Errorf("%w: no command runner configured", model.ErrExecInvalid)
	}

	words, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, err)
	}

	if len(words) == 0 {
		return fmt.Errorf("%w: no command to execute", model.ErrNotSupported)
	}

	return e.runner.StreamWithOptions(ctx, model.ExecOptions{
		Command: words[0],
		Args:    words[1:],
		Timeout: timeout,
	}, sink)
}

func (e *Executor) Name() string {
	return ExecutorName
}
