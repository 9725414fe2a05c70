// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"github.com/nats-io/nats.go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("cachingNatsProvider", func() {
	It("Should reuse the cached connection while it is open", func() {
		nc := &nats.Conn{}
		p := &cachingNatsProvider{nc: nc}

		got, err := p.Connect("EXECVARS")
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(BeIdenticalTo(nc))
	})

	It("Should close cleanly without a connection", func() {
		p := &cachingNatsProvider{}
		Expect(p.Close()).ToNot(HaveOccurred())
		Expect(p.nc).To(BeNil())
	})
})
