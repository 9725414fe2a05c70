// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"time"

	"github.com/choria-io/fisk"

	"github.com/choria-io/execvars/agent"
	"github.com/choria-io/execvars/internal/facts"
	"github.com/choria-io/execvars/manager"
	"github.com/choria-io/execvars/model"
)

type execCommand struct {
	cfg      string
	variable string
	timeout  int
}

func registerExecCommand(app *fisk.Application) {
	cmd := &execCommand{}

	ex := app.Command("exec", "Execute one bound variable and print its value").Action(cmd.execAction)
	ex.Arg("file", "Configuration file to use").Required().ExistingFileVar(&cmd.cfg)
	ex.Arg("var", "Variable to execute").Required().StringVar(&cmd.variable)
	ex.Flag("timeout", "Execution timeout in seconds, 0 runs commands unbounded").Short('t').Default("-1").IntVar(&cmd.timeout)
}

func (c *execCommand) execAction(_ *fisk.ParseContext) error {
	cfb, err := os.ReadFile(c.cfg)
	if err != nil {
		return err
	}

	cfg, err := agent.ParseConfig(cfb)
	if err != nil {
		return err
	}

	if c.timeout >= 0 {
		cfg.SetTimeout(time.Duration(c.timeout) * time.Second)
	}

	log := newLogger()

	f, err := facts.StandardFacts(ctx, log)
	if err != nil {
		log.Warn("Could not gather facts", "error", err)
		f = map[string]any{}
	}

	mgr, err := manager.NewManager(log, manager.WithTimeout(cfg.TimeoutDuration()), manager.WithFacts(f))
	if err != nil {
		return err
	}

	for _, cs := range cfg.Commands {
		b := &model.Binding{
			Variable:  cs.Var,
			Handle:    model.VarHandle(cs.Var),
			Exec:      cs.Exec,
			Fact:      cs.Fact,
			Runner:    cs.Runner,
			Condition: cs.Condition,
		}

		ok, err := mgr.ShouldRegister(b)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		err = mgr.Register(b)
		if err != nil {
			return err
		}
	}

	return mgr.Dispatch(ctx, model.VarHandle(c.variable), os.Stdout)
}
