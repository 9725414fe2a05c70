// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/synadia-io/orbit.go/natscontext"

	"github.com/choria-io/execvars/model"
)

// cachingNatsProvider establishes the variable server connection from a
// NATS context and owns its lifecycle, the cached connection is reused
// while it is open and Close drains it so a later Connect starts fresh
type cachingNatsProvider struct {
	nc  *nats.Conn
	log model.Logger

	mu sync.Mutex
}

func (m *cachingNatsProvider) Connect(natsContext string, opts ...nats.Option) (*nats.Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nc != nil && !m.nc.IsClosed() {
		return m.nc, nil
	}

	m.log.Debug("Connecting to the variable server", "context", natsContext)

	nc, _, err := natscontext.Connect(natsContext, opts...)
	if err != nil {
		return nil, err
	}

	m.log.Info("Connected to the variable server", "context", natsContext, "server", nc.ConnectedUrlRedacted())

	m.nc = nc

	return m.nc, nil
}

// Close drains the cached connection and forgets it
func (m *cachingNatsProvider) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nc == nil {
		return nil
	}

	err := m.nc.Drain()
	m.nc = nil

	return err
}
