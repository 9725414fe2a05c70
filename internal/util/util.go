// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"

	"golang.org/x/term"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsTerminal reports if stdout is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DeepMergeMap merges override into base recursively, override wins on
// conflicting keys
func DeepMergeMap(base map[string]any, override map[string]any) map[string]any {
	res := make(map[string]any, len(base))
	for k, v := range base {
		res[k] = v
	}

	for k, v := range override {
		bv, ok := res[k]
		if !ok {
			res[k] = v
			continue
		}

		bm, bok := bv.(map[string]any)
		om, ook := v.(map[string]any)
		if bok && ook {
			res[k] = DeepMergeMap(bm, om)
		} else {
			res[k] = v
		}
	}

	return res
}
