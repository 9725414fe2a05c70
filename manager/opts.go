// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"fmt"
	"time"

	"github.com/choria-io/execvars/model"
)

// Option is a functional option for configuring ExecVars
type Option func(*ExecVars) error

// WithTimeout bounds every command execution by d, zero keeps executions
// unbounded
func WithTimeout(d time.Duration) Option {
	return func(m *ExecVars) error {
		if d < 0 {
			return fmt.Errorf("%w: timeout may not be negative", model.ErrInvalidConfig)
		}

		m.timeout = d

		return nil
	}
}

// WithCommandStreamer replaces the subprocess runner, used in tests
func WithCommandStreamer(s model.CommandStreamer) Option {
	return func(m *ExecVars) error {
		m.streamer = s

		return nil
	}
}

// WithFacts seeds the facts used for condition guards and fact backed
// variables
func WithFacts(facts map[string]any) Option {
	return func(m *ExecVars) error {
		return m.SetFacts(facts)
	}
}
