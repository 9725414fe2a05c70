// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package varsrv is the client for the variable registry and notification
// service carried over NATS. Print requests for subscribed variables are
// published to per variable subjects, responses stream back to the request
// reply subject as chunk messages terminated by an end of stream marker.
package varsrv

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/segmentio/ksuid"
	"github.com/tidwall/gjson"

	"github.com/choria-io/execvars/model"
)

const (
	// SubjectPrefix roots all variable subjects
	SubjectPrefix = "execvars.var"

	// HeaderRequest carries the request id on requests and sink messages
	HeaderRequest = "Execvars-Request"

	// HeaderEOF marks the final message of one response stream
	HeaderEOF = "Execvars-Eof"

	printSuffix = "print"
)

var _ model.VarServer = (*Server)(nil)

type Server struct {
	nc   *nats.Conn
	log  model.Logger
	reqs chan *nats.Msg
	subs map[model.VarHandle]*nats.Subscription

	closeOnce sync.Once
	mu        sync.Mutex
}

// New creates a server client over an established nats connection
func New(nc *nats.Conn, log model.Logger) (*Server, error) {
	if nc == nil {
		return nil, fmt.Errorf("%w: no connection", model.ErrExecInvalid)
	}

	return &Server{
		nc:   nc,
		log:  log,
		reqs: make(chan *nats.Msg, 64),
		subs: make(map[model.VarHandle]*nats.Subscription),
	}, nil
}

// Resolve maps a variable name like /sys/info/uptime to its handle
func (s *Server) Resolve(name string) (model.VarHandle, error) {
	if name == "" {
		return model.InvalidHandle, fmt.Errorf("%w: empty variable name", model.ErrVariableNotFound)
	}

	if strings.ContainsAny(name, " \t\r\n*>") {
		return model.InvalidHandle, fmt.Errorf("%w: %q is not addressable", model.ErrVariableNotFound, name)
	}

	return model.VarHandle(name), nil
}

// PrintSubject is the subject print requests for a handle arrive on
func PrintSubject(handle model.VarHandle) string {
	token := strings.ReplaceAll(strings.Trim(string(handle), "/"), "/", ".")

	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, token, printSuffix)
}

// Subscribe declares that this process answers print requests for handle,
// all subscriptions feed one ordered channel so requests are serviced
// strictly in arrival order
func (s *Server) Subscribe(handle model.VarHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[handle]; ok {
		return nil
	}

	sub, err := s.nc.ChanSubscribe(PrintSubject(handle), s.reqs)
	if err != nil {
		return fmt.Errorf("%w: subscribe %s: %v", model.ErrExecInvalid, handle, err)
	}

	s.subs[handle] = sub

	return nil
}

// NextRequest blocks until the next notification arrives or ctx ends
func (s *Server) NextRequest(ctx context.Context) (*model.PrintRequest, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case msg, ok := <-s.reqs:
		if !ok {
			return nil, fmt.Errorf("%w: subscription closed", model.ErrExecInvalid)
		}

		return decodeRequest(msg)
	}
}

func decodeRequest(msg *nats.Msg) (*model.PrintRequest, error) {
	req := &model.PrintRequest{Kind: model.EventUnknown, Reply: msg.Reply}

	if v := gjson.GetBytes(msg.Data, "var"); v.Exists() {
		req.Handle = model.VarHandle(v.String())
	}

	kind := gjson.GetBytes(msg.Data, "kind")
	switch {
	case !kind.Exists(), kind.String() == "print":
		req.Kind = model.EventPrint
	case kind.String() == "modified":
		req.Kind = model.EventModified
	}

	// the requester may direct the response elsewhere than the reply subject
	if sink := gjson.GetBytes(msg.Data, "sink"); sink.Exists() {
		req.Reply = sink.String()
	}

	req.RequestID = msg.Header.Get(HeaderRequest)
	if req.RequestID == "" {
		req.RequestID = ksuid.New().String()
	}

	if req.Handle == model.InvalidHandle {
		return nil, fmt.Errorf("%w: request without variable name", model.ErrExecInvalid)
	}

	if req.Kind == model.EventPrint && req.Reply == "" {
		return nil, fmt.Errorf("%w: print request without reply subject", model.ErrExecInvalid)
	}

	return req, nil
}

// OpenSink opens the response destination for one request
func (s *Server) OpenSink(req *model.PrintRequest) (io.WriteCloser, model.VarHandle, error) {
	if req == nil || req.Reply == "" {
		return nil, model.InvalidHandle, fmt.Errorf("%w: no reply destination", model.ErrExecInvalid)
	}

	return newSink(req.Reply, req.RequestID, s.nc.PublishMsg), req.Handle, nil
}

// CloseSink terminates the response stream and flushes the connection
func (s *Server) CloseSink(req *model.PrintRequest, sink io.WriteCloser) error {
	if sink == nil {
		return nil
	}

	err := sink.Close()
	ferr := s.nc.Flush()
	if err != nil {
		return err
	}

	return ferr
}

// Close releases interest in every subscribed variable, it is safe to call
// more than once. The connection itself belongs to whoever established it
func (s *Server) Close() error {
	var err error

	s.closeOnce.Do(func() {
		s.log.Info("Releasing variable subscriptions")

		s.mu.Lock()
		for _, sub := range s.subs {
			sub.Unsubscribe()
		}
		s.mu.Unlock()

		err = s.nc.Flush()
	})

	return err
}
