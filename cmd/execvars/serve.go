// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"sync"
	"time"

	"github.com/choria-io/fisk"

	"github.com/choria-io/execvars/agent"
)

type serveCommand struct {
	cfg         string
	timeout     int
	natsContext string
	monitorPort int
}

func registerServeCommand(app *fisk.Application) {
	cmd := &serveCommand{}

	serve := app.Command("serve", "Serve configured variables").Action(cmd.serveAction)
	serve.Flag("file", "Configuration file to use").Short('f').Required().ExistingFileVar(&cmd.cfg)
	serve.Flag("timeout", "Execution timeout in seconds, 0 runs commands unbounded").Short('t').Default("-1").IntVar(&cmd.timeout)
	serve.Flag("context", "NATS Context to connect with").Envar("NATS_CONTEXT").StringVar(&cmd.natsContext)
	serve.Flag("monitor-port", "Port to serve Prometheus metrics on").IntVar(&cmd.monitorPort)
}

func (c *serveCommand) serveAction(_ *fisk.ParseContext) error {
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
	if c.natsContext != "" {
		cfg.NatsContext = c.natsContext
	}
	if c.monitorPort > 0 {
		cfg.MonitorPort = c.monitorPort
	}

	switch {
	case debug:
		cfg.LogLevel = "debug"
	case info:
		cfg.LogLevel = "info"
	}

	ag, err := agent.New(cfg)
	if err != nil {
		return err
	}

	wg := sync.WaitGroup{}
	wg.Add(1)
	err = ag.Run(ctx, &wg)
	if err != nil {
		return err
	}

	wg.Wait()

	return nil
}
