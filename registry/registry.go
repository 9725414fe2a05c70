// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"sync"

	"github.com/choria-io/execvars/model"
)

// Registry maps variable handles to their bindings. It is populated during
// startup and read only once the event loop runs, the lock exists so the
// read path stays correct should dispatch ever become concurrent
type Registry struct {
	bindings map[model.VarHandle]*model.Binding
	mu       sync.RWMutex
}

func New() *Registry {
	return &Registry{bindings: make(map[model.VarHandle]*model.Binding)}
}

// Register stores a binding, registering the same handle again overwrites
// the earlier binding so the last configured one wins
func (r *Registry) Register(b *model.Binding) error {
	if b == nil {
		return fmt.Errorf("%w: nil binding", model.ErrExecInvalid)
	}
	if b.Handle == model.InvalidHandle {
		return fmt.Errorf("%w: binding %q has no handle", model.ErrExecInvalid, b.Variable)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[b.Handle] = b

	return nil
}

// Lookup finds the binding for a handle
func (r *Registry) Lookup(handle model.VarHandle) (*model.Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[handle]

	return b, ok
}

// Len is the number of registered bindings
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bindings)
}

// Each calls fn for every registered binding in unspecified order
func (r *Registry) Each(fn func(*model.Binding)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bindings {
		fn(b)
	}
}
