/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider and starts its
// HTTP server, if one was provided. The server is served from a goroutine so
// that startup can proceed; Destroy shuts it down.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if pp.httpServer.Handler == nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", NewHandler())

		pp.httpServer.Handler = mux
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the platform services.
type PromMetrics struct {
	commandCallTime           prometheus.Histogram
	commandCallErrors         prometheus.Counter
	commandHandleTime         prometheus.Histogram
	lateReplies               prometheus.Counter
	endorsementTransitionTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		commandCallTime:           newCommandCallTime(),
		commandCallErrors:         newCommandCallErrors(),
		commandHandleTime:         newCommandHandleTime(),
		lateReplies:               newLateReplies(),
		endorsementTransitionTime: newEndorsementTransitionTime(),
	}

	registerMetrics(pm)

	return pm
}

// CommandCallTime records the round-trip time of an RPC call.
func (pm *PromMetrics) CommandCallTime(value time.Duration) {
	pm.commandCallTime.Observe(value.Seconds())

	logger.Debug("rpc call time", logfields.WithDuration(value))
}

// CommandCallErrorIncrement increments the RPC call error counter.
func (pm *PromMetrics) CommandCallErrorIncrement() {
	pm.commandCallErrors.Inc()
}

// CommandHandleTime records the server-side handling time of a command.
func (pm *PromMetrics) CommandHandleTime(value time.Duration) {
	pm.commandHandleTime.Observe(value.Seconds())

	logger.Debug("rpc handle time", logfields.WithDuration(value))
}

// LateReplyIncrement increments the discarded-late-reply counter.
func (pm *PromMetrics) LateReplyIncrement() {
	pm.lateReplies.Inc()
}

// EndorsementTransitionTime records the time of an endorsement state transition.
func (pm *PromMetrics) EndorsementTransitionTime(value time.Duration) {
	pm.endorsementTransitionTime.Observe(value.Seconds())

	logger.Debug("endorsement transition time", logfields.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.commandCallTime, pm.commandCallErrors, pm.commandHandleTime,
		pm.lateReplies, pm.endorsementTransitionTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCommandCallTime() prometheus.Histogram {
	return newHistogram(
		metrics.Messaging, metrics.MessagingCallTimeMetric,
		"The round-trip time (in seconds) of an RPC command call.",
		nil,
	)
}

func newCommandCallErrors() prometheus.Counter {
	return newCounter(
		metrics.Messaging, metrics.MessagingCallErrorMetric,
		"The number of failed RPC command calls.",
		nil,
	)
}

func newCommandHandleTime() prometheus.Histogram {
	return newHistogram(
		metrics.Messaging, metrics.MessagingHandleTimeMetric,
		"The time (in seconds) it takes a service to handle an inbound command.",
		nil,
	)
}

func newLateReplies() prometheus.Counter {
	return newCounter(
		metrics.Messaging, metrics.MessagingLateRepliesMetric,
		"The number of replies discarded because their waiter already timed out.",
		nil,
	)
}

func newEndorsementTransitionTime() prometheus.Histogram {
	return newHistogram(
		metrics.Endorsement, metrics.EndorsementTransitionTimeMetric,
		"The time (in seconds) it takes to commit an endorsement transaction state transition.",
		nil,
	)
}
