// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"log/slog"

	"github.com/choria-io/execvars/model"
	"github.com/sirupsen/logrus"
)

var (
	_ model.Logger = (*SlogLogger)(nil)
	_ model.Logger = (*LogrusLogger)(nil)
)

// SlogLogger adapts a slog logger to the model.Logger interface
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.log.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.log.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.log.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.log.Error(msg, args...) }

func (s *SlogLogger) With(args ...any) model.Logger {
	return NewSlogLogger(s.log.With(args...))
}

// LogrusLogger adapts a logrus entry to the model.Logger interface
type LogrusLogger struct {
	log *logrus.Entry
}

func NewLogrusLogger(log *logrus.Entry) *LogrusLogger {
	return &LogrusLogger{log: log}
}

func (l *LogrusLogger) genFields(args ...any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			continue
		}
		fields[k] = args[i+1]
	}

	return fields
}

func (l *LogrusLogger) Debug(msg string, args ...any) {
	l.log.WithFields(l.genFields(args...)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, args ...any) {
	l.log.WithFields(l.genFields(args...)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, args ...any) {
	l.log.WithFields(l.genFields(args...)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, args ...any) {
	l.log.WithFields(l.genFields(args...)).Error(msg)
}

func (l *LogrusLogger) With(args ...any) model.Logger {
	return NewLogrusLogger(l.log.WithFields(l.genFields(args...)))
}
