// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/choria-io/fisk"

	"github.com/choria-io/execvars/agent"
)

type checkCommand struct {
	cfg string
}

func registerCheckCommand(app *fisk.Application) {
	cmd := &checkCommand{}

	check := app.Command("check", "Validate a configuration file").Action(cmd.checkAction)
	check.Arg("file", "Configuration file to validate").Required().ExistingFileVar(&cmd.cfg)
}

func (c *checkCommand) checkAction(_ *fisk.ParseContext) error {
	cfb, err := os.ReadFile(c.cfg)
	if err != nil {
		return err
	}

	cfg, err := agent.ParseConfig(cfb)
	if err != nil {
		return err
	}

	out := newOutputLogger()

	for _, cs := range cfg.Commands {
		switch {
		case cs.Fact != "":
			out.Info("Valid fact binding", "variable", cs.Var, "fact", cs.Fact)
		case cs.Exec == "":
			out.Warn("Binding without a command, requests will be unsupported", "variable", cs.Var)
		default:
			out.Info("Valid command binding", "variable", cs.Var, "runner", cs.Runner)
		}
	}

	out.Info("Configuration is valid", "file", c.cfg, "bindings", len(cfg.Commands), "timeout", cfg.TimeoutDuration())

	return nil
}
