// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/choria-io/execvars/model"
)

var (
	NameSpace = "choria"
	Subsystem = "execvars"

	// RequestCount counts print requests per variable and outcome
	RequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "request_count"),
		Help: "How many print requests were handled",
	}, []string{"variable", "outcome"})

	// DispatchTime is a summary of the time taken to produce one value
	DispatchTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "dispatch_duration_seconds"),
		Help: "Time taken to produce the value for one request",
	}, []string{"variable"})

	// ExecTimeoutCount counts commands killed after exceeding the deadline
	ExecTimeoutCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "exec_timeout_count"),
		Help: "How many command executions were terminated on deadline",
	}, []string{"command"})

	// UnsupportedEventCount counts notifications that were not print requests
	UnsupportedEventCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "unsupported_event_count"),
		Help: "How many unsupported notifications were received",
	}, []string{"kind"})

	// SinkWriteErrorCount counts failures writing responses to sinks
	SinkWriteErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "sink_write_error_count"),
		Help: "How many sink writes failed",
	}, []string{"variable"})
)

func RegisterMetrics() {
	prometheus.MustRegister(RequestCount)
	prometheus.MustRegister(DispatchTime)
	prometheus.MustRegister(ExecTimeoutCount)
	prometheus.MustRegister(UnsupportedEventCount)
	prometheus.MustRegister(SinkWriteErrorCount)
}

func ListenAndServe(port int, log model.Logger) {
	if port <= 0 {
		return
	}

	go func() {
		log.Info("Starting monitoring server", "port", port)
		http.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
		if err != nil {
			log.Error("HTTP Listener failed", "error", err)
		}
	}()
}
