// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package varsrv

import (
	"fmt"
	"os"
	"sync"

	"github.com/nats-io/nats.go"
)

// sink streams one response, every Write publishes a chunk message to the
// destination subject and Close publishes the end of stream marker
type sink struct {
	subject   string
	requestID string
	publish   func(*nats.Msg) error
	closed    bool

	mu sync.Mutex
}

func newSink(subject string, requestID string, publish func(*nats.Msg) error) *sink {
	return &sink{subject: subject, requestID: requestID, publish: publish}
}

func (w *sink) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, fmt.Errorf("sink %s: %w", w.subject, os.ErrClosed)
	}

	msg := nats.NewMsg(w.subject)
	msg.Header.Set(HeaderRequest, w.requestID)
	msg.Data = append([]byte{}, p...)

	err := w.publish(msg)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

func (w *sink) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	msg := nats.NewMsg(w.subject)
	msg.Header.Set(HeaderRequest, w.requestID)
	msg.Header.Set(HeaderEOF, "1")

	return w.publish(msg)
}
