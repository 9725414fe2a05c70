// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"bytes"
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/execvars/model"
	"github.com/choria-io/execvars/model/modelmocks"
	"github.com/choria-io/execvars/runner"
	"github.com/choria-io/execvars/runner/direct"
	"github.com/choria-io/execvars/runner/shell"
)

// a write closer safe to inspect while the event loop writes to it
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Close() error { return nil }

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ = Describe("Agent", func() {
	var (
		mockctl *gomock.Controller
		srv     *modelmocks.MockVarServer
		cfg     *Config
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		srv = modelmocks.NewMockVarServer(mockctl)

		runner.Clear()
		shell.Register()
		direct.Register()

		var err error
		cfg, err = ParseConfig([]byte(`
commands:
  - var: /sys/info/uptime
    exec: echo 5 days
log_level: error
`))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		mockctl.Finish()
		runner.Clear()
	})

	It("Should serve a print request end to end", func() {
		handle := model.VarHandle("/sys/info/uptime")
		req := &model.PrintRequest{Handle: handle, Kind: model.EventPrint, RequestID: "req-1", Reply: "_INBOX.x"}
		sink := &syncBuffer{}

		srv.EXPECT().Resolve("/sys/info/uptime").Return(handle, nil)
		srv.EXPECT().Subscribe(handle).Return(nil)
		srv.EXPECT().Close().Return(nil)

		gomock.InOrder(
			srv.EXPECT().NextRequest(gomock.Any()).Return(req, nil),
			srv.EXPECT().NextRequest(gomock.Any()).DoAndReturn(func(ctx context.Context) (*model.PrintRequest, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		)

		srv.EXPECT().OpenSink(req).Return(sink, handle, nil)
		srv.EXPECT().CloseSink(req, sink).Return(nil)

		ag, err := New(cfg, WithVarServer(srv))
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		wg := sync.WaitGroup{}
		wg.Add(1)

		result := make(chan error, 1)
		go func() {
			result <- ag.Run(ctx, &wg)
		}()

		Eventually(sink.String).Should(Equal("5 days\n"))

		cancel()
		Eventually(result).Should(Receive(BeNil()))
		wg.Wait()
	})

	It("Should ignore notifications that are not print requests", func() {
		handle := model.VarHandle("/sys/info/uptime")
		modified := &model.PrintRequest{Handle: handle, Kind: model.EventModified, RequestID: "req-1"}

		srv.EXPECT().Resolve("/sys/info/uptime").Return(handle, nil)
		srv.EXPECT().Subscribe(handle).Return(nil)
		srv.EXPECT().Close().Return(nil)

		gomock.InOrder(
			srv.EXPECT().NextRequest(gomock.Any()).Return(modified, nil),
			srv.EXPECT().NextRequest(gomock.Any()).DoAndReturn(func(ctx context.Context) (*model.PrintRequest, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		)

		// no OpenSink, no dispatch

		ag, err := New(cfg, WithVarServer(srv))
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		wg := sync.WaitGroup{}
		wg.Add(1)

		result := make(chan error, 1)
		go func() {
			result <- ag.Run(ctx, &wg)
		}()

		cancel()
		Eventually(result).Should(Receive(BeNil()))
		wg.Wait()
	})

	It("Should fail when no variable could be registered", func() {
		cfg, err := ParseConfig([]byte(`
commands:
  - var: /sys/info/uptime
    exec: echo 5 days
    condition: "false"
log_level: error
`))
		Expect(err).ToNot(HaveOccurred())

		ag, err := New(cfg, WithVarServer(srv))
		Expect(err).ToNot(HaveOccurred())

		wg := sync.WaitGroup{}
		wg.Add(1)

		err = ag.Run(context.Background(), &wg)
		Expect(err).To(MatchError(ContainSubstring("no variables registered")))
		wg.Wait()
	})

	It("Should continue when a variable cannot be resolved", func() {
		cfg, err := ParseConfig([]byte(`
commands:
  - var: "/sys/bad name"
    exec: echo one
  - var: /sys/good
    exec: echo two
log_level: error
`))
		Expect(err).ToNot(HaveOccurred())

		handle := model.VarHandle("/sys/good")
		srv.EXPECT().Resolve("/sys/bad name").Return(model.InvalidHandle, model.ErrVariableNotFound)
		srv.EXPECT().Resolve("/sys/good").Return(handle, nil)
		srv.EXPECT().Subscribe(handle).Return(nil)
		srv.EXPECT().Close().Return(nil)

		srv.EXPECT().NextRequest(gomock.Any()).DoAndReturn(func(ctx context.Context) (*model.PrintRequest, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		ag, err := New(cfg, WithVarServer(srv))
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		wg := sync.WaitGroup{}
		wg.Add(1)

		result := make(chan error, 1)
		go func() {
			result <- ag.Run(ctx, &wg)
		}()

		cancel()
		Eventually(result).Should(Receive(BeNil()))
		wg.Wait()
	})
})
