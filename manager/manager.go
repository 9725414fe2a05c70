// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/choria-io/execvars/internal/cmdrunner"
	"github.com/choria-io/execvars/internal/facts"
	"github.com/choria-io/execvars/metrics"
	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/registry"
	"github.com/choria-io/execvars/runner"
)

// ExecVars resolves print requests to bound commands and relays their
// output to the request sink, it owns the binding registry and the
// execution strategies
type ExecVars struct {
	registry  *registry.Registry
	log       model.Logger
	timeout   time.Duration
	streamer  model.CommandStreamer
	executors map[string]model.Executor
	facts     map[string]any
	factsJSON []byte

	mu sync.Mutex
}

// NewManager creates a new ExecVars instance with the provided logger
func NewManager(log model.Logger, opts ...Option) (*ExecVars, error) {
	m := &ExecVars{
		log:       log,
		registry:  registry.New(),
		executors: make(map[string]model.Executor),
	}

	for _, opt := range opts {
		err := opt(m)
		if err != nil {
			return nil, err
		}
	}

	if m.streamer == nil {
		var err error
		m.streamer, err = cmdrunner.NewCommandRunner(log)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Register stores a binding in the registry, last registration wins
func (m *ExecVars) Register(b *model.Binding) error {
	return m.registry.Register(b)
}

// Registry gives access to the binding registry
func (m *ExecVars) Registry() *registry.Registry {
	return m.registry
}

// Timeout is the process wide execution timeout, zero means unbounded
func (m *ExecVars) Timeout() time.Duration {
	return m.timeout
}

// SetFacts stores the facts used for condition guards and fact backed
// variables, called once during startup before the event loop runs
func (m *ExecVars) SetFacts(facts map[string]any) error {
	fj, err := gjsonSafe(facts)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.facts = facts
	m.factsJSON = fj

	return nil
}

// ShouldRegister evaluates the optional condition guard of a binding
// against the current facts
func (m *ExecVars) ShouldRegister(b *model.Binding) (bool, error) {
	if b.Condition == "" {
		return true, nil
	}

	prog, err := expr.Compile(b.Condition, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("%w: condition for %s: %v", model.ErrInvalidConfig, b.Variable, err)
	}

	m.mu.Lock()
	env := m.facts
	m.mu.Unlock()

	if env == nil {
		env = map[string]any{}
	}

	out, err := expr.Run(prog, env)
	if err != nil {
		return false, fmt.Errorf("%w: condition for %s: %v", model.ErrInvalidConfig, b.Variable, err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Dispatch produces the value for one variable and writes it to sink, the
// result only signals whether production succeeded, output travels through
// the sink as a side channel
func (m *ExecVars) Dispatch(ctx context.Context, handle model.VarHandle, sink io.Writer) error {
	b, ok := m.registry.Lookup(handle)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrVariableNotFound, handle)
	}

	timer := prometheus.NewTimer(metrics.DispatchTime.WithLabelValues(b.Variable))
	defer timer.ObserveDuration()

	switch {
	case b.Fact != "":
		return m.dispatchFact(b, sink)
	case b.Exec == "":
		return fmt.Errorf("%w: no command bound to %s", model.ErrNotSupported, b.Variable)
	}

	exe, err := m.executor(b.Runner)
	if err != nil {
		return err
	}

	m.log.Debug("Dispatching", "variable", b.Variable, "runner", exe.Name(), "timeout", m.timeout)

	return exe.Execute(ctx, b.Exec, m.timeout, sink)
}

func (m *ExecVars) dispatchFact(b *model.Binding, sink io.Writer) error {
	m.mu.Lock()
	fj := m.factsJSON
	m.mu.Unlock()

	res := gjson.GetBytes(fj, b.Fact)
	if !res.Exists() {
		return fmt.Errorf("%w: fact %s for %s", model.ErrVariableNotFound, b.Fact, b.Variable)
	}

	_, err := fmt.Fprintln(sink, res.String())
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrExecInvalid, err)
	}

	return nil
}

// executors are created on first use and cached, the empty name selects
// the most preferred strategy available on this host
func (m *ExecVars) executor(name string) (model.Executor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.executors[name]
	if ok {
		return e, nil
	}

	var err error
	if name == "" {
		e, err = runner.Default(m.log, m.streamer)
	} else {
		e, err = runner.New(name, m.log, m.streamer)
	}
	if err != nil {
		return nil, err
	}

	m.executors[name] = e

	return e, nil
}

func gjsonSafe(f map[string]any) ([]byte, error) {
	if f == nil {
		return []byte("{}"), nil
	}

	fj, err := facts.JSON(f)
	if err != nil {
		return nil, fmt.Errorf("%w: facts: %v", model.ErrInvalidConfig, err)
	}

	return fj, nil
}
