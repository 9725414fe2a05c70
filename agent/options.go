// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"github.com/choria-io/execvars/model"
)

type Option func(a *Agent) error

// WithVarServer replaces the NATS backed variable server client, used in
// tests and for alternative transports
func WithVarServer(srv model.VarServer) Option {
	return func(a *Agent) error {
		a.srv = srv
		return nil
	}
}

// WithNatsConnection sets the provider used to establish the server
// connection
func WithNatsConnection(p model.NatsConnProvider) Option {
	return func(a *Agent) error {
		a.natsProvider = p
		return nil
	}
}
