// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"io"

	"github.com/nats-io/nats.go"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// VarHandle identifies a variable being served, it is the handle bindings
// are registered and looked up under
type VarHandle string

// InvalidHandle is returned by Resolve for names that cannot be served
const InvalidHandle VarHandle = ""

// EventKind is the kind of notification received from the variable server
type EventKind int

const (
	// EventPrint requests the current value of a variable to be rendered
	EventPrint EventKind = iota
	// EventModified notifies that a variable was changed elsewhere
	EventModified
	// EventUnknown is any notification we do not understand
	EventUnknown
)

func (k EventKind) String() string {
	switch k {
	case EventPrint:
		return "print"
	case EventModified:
		return "modified"
	default:
		return "unknown"
	}
}

// PrintRequest is one notification from the variable server, it exists only
// for the duration of a single dispatch
type PrintRequest struct {
	// Handle is the variable being requested
	Handle VarHandle
	// Kind is the kind of notification received
	Kind EventKind
	// RequestID is a unique id used to correlate logs and sink messages
	RequestID string
	// Reply is the transport address the response sink publishes to
	Reply string
}

// VarServer is the client side of the variable registry and notification
// service, requests are delivered strictly in the order the service sends
// them and at most one response sink is open at a time
type VarServer interface {
	// Resolve maps a variable name to its handle
	Resolve(name string) (VarHandle, error)

	// Subscribe declares that this process answers print requests for handle
	Subscribe(handle VarHandle) error

	// NextRequest blocks until the next notification arrives or ctx ends
	NextRequest(ctx context.Context) (*PrintRequest, error)

	// OpenSink opens the response destination for one request
	OpenSink(req *PrintRequest) (io.WriteCloser, VarHandle, error)

	// CloseSink terminates the response for one request
	CloseSink(req *PrintRequest, sink io.WriteCloser) error

	// Close releases interest in all subscribed variables
	Close() error
}

// NatsConnProvider provides nats connections to the server client and
// owns their lifecycle, it exists to facilitate testing and connection
// caching
type NatsConnProvider interface {
	// Connect establishes or reuses a connection for the named context
	Connect(natsContext string, opts ...nats.Option) (*nats.Conn, error)

	// Close drains any connection the provider holds
	Close() error
}
