// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/choria-io/execvars/internal/facts"
	"github.com/choria-io/execvars/manager"
	"github.com/choria-io/execvars/metrics"
	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/varsrv"
)

// Agent subscribes to print requests for all configured variables and
// answers them one at a time in arrival order
type Agent struct {
	cfg          *Config
	log          model.Logger
	mgr          *manager.ExecVars
	srv          model.VarServer
	ownsSrv      bool
	natsProvider model.NatsConnProvider
	started      bool

	ctx    context.Context
	cancel context.CancelFunc

	mu sync.Mutex
}

// New creates a new agent
func New(cfg *Config, opts ...Option) (*Agent, error) {
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	mgr, err := manager.NewManager(logger, manager.WithTimeout(cfg.TimeoutDuration()))
	if err != nil {
		return nil, err
	}

	a := &Agent{
		cfg:          cfg,
		log:          logger,
		mgr:          mgr,
		natsProvider: &cachingNatsProvider{log: logger},
	}

	for _, opt := range opts {
		err := opt(a)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *Agent) Run(ctx context.Context, wg *sync.WaitGroup) error {
	defer wg.Done()

	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return fmt.Errorf("already started")
	}

	a.ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()
	a.started = true
	a.mu.Unlock()

	a.log.Warn("Starting execvars", "bindings", len(a.cfg.Commands), "timeout", a.mgr.Timeout())

	if a.cfg.MonitorPort > 0 {
		metrics.RegisterMetrics()
		metrics.ListenAndServe(a.cfg.MonitorPort, a.log)
	}

	if a.srv == nil {
		// the only fatal runtime failure, without the service no
		// requests can ever arrive
		nc, err := a.natsProvider.Connect(a.cfg.NatsContext, nats.Name("execvars"))
		if err != nil {
			return fmt.Errorf("could not connect to variable server: %w", err)
		}

		a.srv, err = varsrv.New(nc, a.log)
		if err != nil {
			return err
		}
		a.ownsSrv = true
	}

	err := a.setupBindings(a.ctx)
	if err != nil {
		return err
	}

	if a.mgr.Registry().Len() == 0 {
		return fmt.Errorf("no variables registered")
	}

	return a.loop()
}

func (a *Agent) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return nil
	}

	a.cancel()
	a.started = false

	return nil
}

func (a *Agent) setupBindings(ctx context.Context) error {
	f, err := facts.StandardFacts(ctx, a.log)
	if err != nil {
		a.log.Warn("Could not gather facts, conditions and fact variables are disabled", "error", err)
		f = map[string]any{}
	}

	err = a.mgr.SetFacts(f)
	if err != nil {
		return err
	}

	for _, cs := range a.cfg.Commands {
		b := &model.Binding{
			Variable:  cs.Var,
			Exec:      cs.Exec,
			Fact:      cs.Fact,
			Runner:    cs.Runner,
			Condition: cs.Condition,
		}

		ok, err := a.mgr.ShouldRegister(b)
		if err != nil {
			return err
		}
		if !ok {
			a.log.Info("Skipping binding, condition not met", "variable", cs.Var)
			continue
		}

		b.Handle, err = a.srv.Resolve(cs.Var)
		if err != nil {
			a.log.Error("Could not resolve variable", "variable", cs.Var, "error", err)
			continue
		}

		err = a.srv.Subscribe(b.Handle)
		if err != nil {
			return err
		}

		// duplicates overwrite, the last configured binding wins
		err = a.mgr.Register(b)
		if err != nil {
			return err
		}
	}

	// the effective set, duplicates in the configuration are gone here
	a.mgr.Registry().Each(func(b *model.Binding) {
		a.log.Debug("Serving variable", "variable", b.Variable, "runner", b.Runner)
	})

	return nil
}

// one request at a time, a slow command delays everything queued behind
// it, the trade off keeps the registry and sink handling free of any
// shared mutable state
func (a *Agent) loop() error {
	for {
		req, err := a.srv.NextRequest(a.ctx)
		if err != nil {
			if a.ctx.Err() != nil {
				a.shutdown()
				return nil
			}

			a.log.Error("Could not receive request", "error", err)
			continue
		}

		a.handleRequest(req)
	}
}

func (a *Agent) shutdown() {
	a.log.Warn("Shutting down on termination")

	err := a.srv.Close()
	if err != nil {
		a.log.Error("Could not release variable subscriptions", "error", err)
	}

	// the provider drains the connection, a later Run connects fresh
	if a.ownsSrv {
		a.srv = nil
	}

	err = a.natsProvider.Close()
	if err != nil {
		a.log.Error("Could not drain the variable server connection", "error", err)
	}
}

func (a *Agent) handleRequest(req *model.PrintRequest) {
	log := a.log.With("request", req.RequestID, "variable", string(req.Handle))

	if req.Kind != model.EventPrint {
		log.Warn("Unsupported notification", "kind", req.Kind.String())
		metrics.UnsupportedEventCount.WithLabelValues(req.Kind.String()).Inc()
		return
	}

	sink, handle, err := a.srv.OpenSink(req)
	if err != nil {
		log.Error("Could not open response sink", "error", err)
		return
	}

	err = a.mgr.Dispatch(a.ctx, handle, sink)

	outcome := "ok"
	switch {
	case errors.Is(err, model.ErrDeadlineExceeded):
		outcome = "timeout"
	case errors.Is(err, model.ErrVariableNotFound):
		outcome = "notfound"
		log.Warn("Variable is not bound", "error", err)
	case errors.Is(err, model.ErrNotSupported):
		outcome = "unsupported"
		log.Warn("Variable cannot be produced", "error", err)
	case err != nil:
		outcome = "error"
		log.Error("Dispatch failed", "error", err)
	}
	metrics.RequestCount.WithLabelValues(string(handle), outcome).Inc()

	err = a.srv.CloseSink(req, sink)
	if err != nil {
		metrics.SinkWriteErrorCount.WithLabelValues(string(handle)).Inc()
		log.Error("Could not close response sink", "error", err)
	}
}
