// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/model/modelmocks"
)

var _ = Describe("Shell Executor", func() {
	var (
		mockctl  *gomock.Controller
		logger   *modelmocks.MockLogger
		runner   *modelmocks.MockCommandStreamer
		executor *Executor
		sink     *bytes.Buffer
		err      error
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewLogger(mockctl)
		runner = modelmocks.NewMockCommandStreamer(mockctl)
		sink = &bytes.Buffer{}

		executor, err = NewShellExecutor(logger, runner)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("Name", func() {
		It("Should return the executor name", func() {
			Expect(executor.Name()).To(Equal("shell"))
		})
	})

	Describe("Execute", func() {
		It("Should run the command under sh -c", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/sh",
				Args:    []string{"-c", "echo hello"},
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), "echo hello", 0, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should pass pipelines to the shell verbatim", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/sh",
				Args:    []string{"-c", "cat /proc/uptime | awk '{print $1}'"},
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), "cat /proc/uptime | awk '{print $1}'", 0, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should pass the timeout to the runner", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/sh",
				Args:    []string{"-c", "sleep 1"},
				Timeout: 30 * time.Second,
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), "sleep 1", 30*time.Second, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should surface runner errors", func() {
			expected := errors.New("runner error")
			runner.EXPECT().StreamWithOptions(gomock.Any(), gomock.Any(), gomock.Any()).Return(expected)

			err := executor.Execute(context.Background(), "echo hello", 0, sink)
			Expect(err).To(Equal(expected))
		})

		It("Should fail without a runner", func() {
			executor, err := NewShellExecutor(logger, nil)
			Expect(err).ToNot(HaveOccurred())

			err = executor.Execute(context.Background(), "echo hello", 0, sink)
			Expect(err).To(MatchError(model.ErrExecInvalid))
		})

		It("Should refuse an empty command", func() {
			err := executor.Execute(context.Background(), "", 0, sink)
			Expect(err).To(MatchError(model.ErrNotSupported))
		})
	})
})
