// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package runner holds the registry of execution strategies, strategies
// register themselves at start and are selected by name or availability
package runner

import (
	"fmt"
	"sort"
	"sync"

	"github.com/choria-io/execvars/model"
)

var (
	factories = make(map[string]model.ExecutorFactory)
	mu        sync.Mutex
)

// Clear removes all registered executor factories
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	factories = make(map[string]model.ExecutorFactory)
}

// Register registers an executor factory
func Register(f model.ExecutorFactory) error {
	mu.Lock()
	defer mu.Unlock()

	_, ok := factories[f.Name()]
	if ok {
		return model.ErrDuplicateExecutor
	}

	factories[f.Name()] = f

	return nil
}

// MustRegister registers an executor factory and panics on failure
func MustRegister(f model.ExecutorFactory) {
	err := Register(f)
	if err != nil {
		panic(err)
	}
}

// New creates the named executor after checking it can run on this host
func New(name string, log model.Logger, streamer model.CommandStreamer) (model.Executor, error) {
	mu.Lock()
	defer mu.Unlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrExecutorNotFound, name)
	}

	ok, _, err := f.IsAvailable()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrExecutorNotFound, name, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not usable on this host", model.ErrExecutorNotFound, name)
	}

	return f.New(log, streamer)
}

// Default creates the most preferred executor available on this host
func Default(log model.Logger, streamer model.CommandStreamer) (model.Executor, error) {
	mu.Lock()
	defer mu.Unlock()

	type matched struct {
		prio    int
		factory model.ExecutorFactory
	}

	var found []*matched

	for _, f := range factories {
		ok, prio, err := f.IsAvailable()
		if err != nil {
			log.Warn("Could not check executor availability", "executor", f.Name(), "error", err)
			continue
		}

		if ok {
			found = append(found, &matched{prio, f})
		}
	}

	if len(found) == 0 {
		return nil, model.ErrExecutorNotFound
	}

	sort.Slice(found, func(i, j int) bool { return found[i].prio < found[j].prio })

	return found[0].factory.New(log, streamer)
}
