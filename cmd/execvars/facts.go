// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/choria-io/fisk"

	"github.com/choria-io/execvars/internal/facts"
)

type factsCommand struct{}

func registerFactsCommand(app *fisk.Application) {
	cmd := &factsCommand{}

	app.Command("facts", "Show the standard facts usable in conditions and fact bindings").Action(cmd.factsAction)
}

func (c *factsCommand) factsAction(_ *fisk.ParseContext) error {
	f, err := facts.StandardFacts(ctx, newLogger())
	if err != nil {
		return err
	}

	jf, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(jf))

	return nil
}
