// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

// Binding associates a variable with the command or fact that computes
// its value, bindings are immutable once registered
type Binding struct {
	// Variable is the full variable name as configured
	Variable string
	// Handle is the resolved handle the binding is registered under
	Handle VarHandle
	// Exec is the command sequence executed to produce the value
	Exec string
	// Fact is a gjson path into the standard facts answered without
	// spawning a process, mutually exclusive with Exec
	Fact string
	// Runner selects the execution strategy, empty selects the default
	Runner string
	// Condition is an optional expression over facts gating registration
	Condition string
}
