// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/SladkyCitron/slogcolor"
	"github.com/choria-io/fisk"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	iu "github.com/choria-io/execvars/internal/util"
	"github.com/choria-io/execvars/manager"
	"github.com/choria-io/execvars/model"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schema     *jsonschema.Schema
	schemaOnce sync.Once
)

// CommandSpec is one variable to command binding as configured, the
// original JSON configuration format parses unchanged
type CommandSpec struct {
	// Var is the variable name, for example /sys/info/uptime
	Var string `yaml:"var"`

	// Exec is the command sequence executed to produce the value
	Exec string `yaml:"exec"`

	// Fact is a fact path answered without executing a command,
	// mutually exclusive with Exec
	Fact string `yaml:"fact"`

	// Runner selects the execution strategy, shell or direct, empty
	// selects the preferred strategy for this host
	Runner string `yaml:"runner"`

	// Condition is an optional expression over facts, the binding is
	// only registered when it evaluates true
	Condition string `yaml:"condition"`
}

// Config holds the agent configuration
type Config struct {
	// Commands are the variable bindings to serve, a variable configured
	// more than once keeps the last binding
	Commands []*CommandSpec `yaml:"commands"`

	// Timeout bounds every command execution, a duration string like
	// "10s" or a number of seconds, zero or unset leaves executions
	// unbounded
	Timeout         any `yaml:"timeout"`
	timeoutDuration time.Duration

	// LogLevel is the log level to use
	// Valid values: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// MonitorPort is the port to listen on for accessing Prometheus stats
	MonitorPort int `yaml:"monitor_port"`

	// NatsContext is the NATS context used to reach the variable server
	NatsContext string `yaml:"nats_context"`
}

func ParseConfig(c []byte) (*Config, error) {
	err := validateSchema(c)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:    "info",
		NatsContext: "EXECVARS",
	}

	err = yaml.Unmarshal(c, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}

	cfg.timeoutDuration, err = parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case string:
		if t == "" {
			return 0, nil
		}

		d, err := fisk.ParseDuration(t)
		if err != nil {
			return 0, fmt.Errorf("%w: timeout: %v", model.ErrInvalidConfig, err)
		}
		return d, nil
	case int:
		return time.Duration(t) * time.Second, nil
	case int64:
		return time.Duration(t) * time.Second, nil
	case uint64:
		return time.Duration(t) * time.Second, nil
	case float64:
		return time.Duration(t * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("%w: timeout has unsupported type %T", model.ErrInvalidConfig, v)
	}
}

func validateSchema(c []byte) error {
	jb, err := yaml.YAMLToJSON(c)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}

	var serr error
	schemaOnce.Do(func() {
		var doc any
		doc, serr = jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if serr != nil {
			return
		}

		compiler := jsonschema.NewCompiler()
		serr = compiler.AddResource("config.json", doc)
		if serr != nil {
			return
		}

		schema, serr = compiler.Compile("config.json")
	})
	if serr != nil {
		return fmt.Errorf("%w: schema: %v", model.ErrInvalidConfig, serr)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jb))
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}

	err = schema.Validate(inst)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.timeoutDuration < 0 {
		return fmt.Errorf("%w: timeout may not be negative", model.ErrInvalidConfig)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be one of: debug, info, warn, error", model.ErrInvalidConfig)
	}

	if c.NatsContext == "" {
		return fmt.Errorf("%w: nats_context must be set", model.ErrInvalidConfig)
	}

	for _, cs := range c.Commands {
		if cs.Var == "" {
			return fmt.Errorf("%w: command without var", model.ErrInvalidConfig)
		}

		if cs.Exec != "" && cs.Fact != "" {
			return fmt.Errorf("%w: %s has both exec and fact", model.ErrInvalidConfig, cs.Var)
		}
	}

	return nil
}

// TimeoutDuration is the parsed execution timeout
func (c *Config) TimeoutDuration() time.Duration {
	return c.timeoutDuration
}

// SetTimeout overrides the configured timeout, used for the command line
// flag
func (c *Config) SetTimeout(d time.Duration) {
	c.timeoutDuration = d
}

func (c *Config) NewLogger() (model.Logger, error) {
	var level slog.Level

	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	if iu.IsTerminal() {
		return manager.NewSlogLogger(
			slog.New(
				slogcolor.NewHandler(os.Stdout, &slogcolor.Options{
					Level: level,
				}))), nil
	}

	return manager.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))), nil
}
