// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"

	iu "github.com/choria-io/execvars/internal/util"
	"github.com/choria-io/execvars/manager"
	"github.com/choria-io/execvars/model"
)

func newLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	case info:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return manager.NewSlogLogger(logger)
}

func newOutputLogger() model.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      iu.IsTerminal(),
		DisableTimestamp: true,
	})

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return manager.NewLogrusLogger(logrus.NewEntry(logger))
}
