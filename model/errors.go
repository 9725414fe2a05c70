// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
)

var (
	ErrVariableNotFound  = errors.New("variable not found")
	ErrCommandNotFound   = errors.New("command not found")
	ErrNotSupported      = errors.New("not supported")
	ErrExecInvalid       = errors.New("invalid execution")
	ErrExecutorNotFound  = errors.New("executor not found")
	ErrDuplicateExecutor = errors.New("executor already exists")
	ErrInvalidConfig     = errors.New("invalid configuration")

	// ErrDeadlineExceeded is the timeout outcome of a bounded execution, it
	// matches ErrExecInvalid in errors.Is checks since a timed out command
	// produced no usable value
	ErrDeadlineExceeded = fmt.Errorf("%w: deadline exceeded", ErrExecInvalid)
)
