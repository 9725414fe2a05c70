// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	iu "github.com/choria-io/execvars/internal/util"
	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/runner"
)

// Register registers this executor with the runner registry
func Register() {
	runner.MustRegister(&factory{})
}

type factory struct{}

func (f *factory) Name() string { return ExecutorName }

func (f *factory) New(log model.Logger, streamer model.CommandStreamer) (model.Executor, error) {
	if streamer == nil {
		log.Warn("factory called with no runner")
	}

	return NewShellExecutor(log, streamer)
}

func (f *factory) IsAvailable() (bool, int, error) {
	return iu.FileExists(shellPath), 99, nil
}
