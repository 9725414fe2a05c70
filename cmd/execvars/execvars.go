// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/choria-io/fisk"

	"github.com/choria-io/execvars/runner/direct"
	"github.com/choria-io/execvars/runner/shell"
)

var (
	ctx     context.Context
	debug   bool
	info    bool
	Version = "development"
)

func main() {
	app := fisk.New("execvars", "Maps variables to executable commands")
	app.Version(Version)
	app.Author("https://choria.io")

	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&debug)
	app.Flag("verbose", "Enable verbose logging").Short('v').UnNegatableBoolVar(&info)

	shell.Register()
	direct.Register()

	registerServeCommand(app)
	registerCheckCommand(app)
	registerExecCommand(app)
	registerFactsCommand(app)

	ctx, _ = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app.MustParseWithUsage(os.Args[1:])
}
