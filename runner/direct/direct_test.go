// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package direct

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/model/modelmocks"
)

var _ = Describe("Direct Executor", func() {
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

		executor, err = NewDirectExecutor(logger, runner)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("Name", func() {
		It("Should return the executor name", func() {
			Expect(executor.Name()).To(Equal("direct"))
		})
	})

	Describe("Execute", func() {
		It("Should split the command into an argv", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/uname",
				Args:    []string{"-r"},
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), "/bin/uname -r", 0, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should honor shell quoting rules while splitting", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/echo",
				Args:    []string{"two words", "single"},
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), `/bin/echo "two words" single`, 0, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should pass the timeout to the runner", func() {
			runner.EXPECT().StreamWithOptions(gomock.Any(), model.ExecOptions{
				Command: "/bin/sleep",
				Args:    []string{"1"},
				Timeout: 5 * time.Second,
			}, sink).Return(nil)

			err := executor.Execute(context.Background(), "/bin/sleep 1", 5*time.Second, sink)
			Expect(err).ToNot(HaveOccurred())
		})

		It("Should fail on unbalanced quotes", func() {
			err := executor.Execute(context.Background(), `/bin/echo "unbalanced`, 0, sink)
			Expect(err).To(MatchError(model.ErrExecInvalid))
		})

		It("Should refuse an empty command", func() {
			err := executor.Execute(context.Background(), "", 0, sink)
			Expect(err).To(MatchError(model.ErrNotSupported))
		})

		It("Should fail without a runner", func() {
			executor, err := NewDirectExecutor(logger, nil)
			Expect(err).ToNot(HaveOccurred())

			err = executor.Execute(context.Background(), "/bin/true", 0, sink)
			Expect(err).To(MatchError(model.ErrExecInvalid))
		})
	})
})
