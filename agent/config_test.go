// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/choria-io/execvars/model"
)

func TestAgent(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Agent")
}

var _ = Describe("Config", func() {
	Describe("ParseConfig", func() {
		It("Should parse a yaml configuration", func() {
			cfg, err := ParseConfig([]byte(`
commands:
  - var: /sys/info/uptime
    exec: uptime -p
  - var: /sys/info/hostname
    fact: host.hostname
  - var: /sys/info/kernel
    exec: /bin/uname -r
    runner: direct
    condition: host.os == "linux"
timeout: 10s
log_level: debug
monitor_port: 8222
nats_context: TEST
`))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Commands).To(HaveLen(3))
			Expect(cfg.Commands[0].Var).To(Equal("/sys/info/uptime"))
			Expect(cfg.Commands[0].Exec).To(Equal("uptime -p"))
			Expect(cfg.Commands[1].Fact).To(Equal("host.hostname"))
			Expect(cfg.Commands[2].Runner).To(Equal("direct"))
			Expect(cfg.Commands[2].Condition).To(Equal(`host.os == "linux"`))
			Expect(cfg.TimeoutDuration()).To(Equal(10 * time.Second))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.MonitorPort).To(Equal(8222))
			Expect(cfg.NatsContext).To(Equal("TEST"))
		})

		It("Should parse the json configuration form", func() {
			cfg, err := ParseConfig([]byte(`{"commands":[{"var":"/sys/info/uptime","exec":"uptime -p | tr -d '\n'"}]}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Commands).To(HaveLen(1))
			Expect(cfg.Commands[0].Var).To(Equal("/sys/info/uptime"))
		})

		It("Should apply defaults", func() {
			cfg, err := ParseConfig([]byte(`{"commands":[{"var":"/sys/test","exec":"true"}]}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.NatsContext).To(Equal("EXECVARS"))
			Expect(cfg.TimeoutDuration()).To(Equal(time.Duration(0)))
		})

		It("Should accept timeouts as seconds", func() {
			cfg, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
timeout: 30
`))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.TimeoutDuration()).To(Equal(30 * time.Second))
		})

		It("Should accept compound duration strings", func() {
			cfg, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
timeout: 1m30s
`))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.TimeoutDuration()).To(Equal(90 * time.Second))
		})

		It("Should fail on invalid duration strings", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
timeout: forever
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail on negative timeouts", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
timeout: -5
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail without commands", func() {
			_, err := ParseConfig([]byte(`timeout: 10s`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail on unknown properties", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
unknown_setting: 1
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail for commands without a variable", func() {
			_, err := ParseConfig([]byte(`
commands:
  - exec: "true"
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail on unknown execution strategies", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
    runner: powershell
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail on unknown log levels", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
log_level: trace
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})

		It("Should fail when a command has both exec and fact", func() {
			_, err := ParseConfig([]byte(`
commands:
  - var: /sys/test
    exec: "true"
    fact: host.os
`))
			Expect(err).To(MatchError(model.ErrInvalidConfig))
		})
	})

	Describe("SetTimeout", func() {
		It("Should override the configured timeout", func() {
			cfg, err := ParseConfig([]byte(`{"commands":[{"var":"/sys/test","exec":"true"}],"timeout":"10s"}`))
			Expect(err).ToNot(HaveOccurred())

			cfg.SetTimeout(time.Second)
			Expect(cfg.TimeoutDuration()).To(Equal(time.Second))
		})
	})
})
