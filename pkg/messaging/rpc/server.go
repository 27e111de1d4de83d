/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/lifecycle"
	"github.com/credentia/platform/pkg/messaging/router"
	"github.com/credentia/platform/pkg/messaging/spi"
	"github.com/credentia/platform/pkg/observability/metrics"
	"github.com/credentia/platform/pkg/observability/metrics/noop"
)

// DefaultHandlerTimeout bounds handler execution when the envelope carries
// no deadline of its own.
const DefaultHandlerTimeout = 30 * time.Second

type serverOpts struct {
	handlerTimeout time.Duration
	metrics        metrics.Metrics
}

// ServerOpt sets a Server option.
type ServerOpt func(opts *serverOpts)

// WithHandlerTimeout overrides the service-wide default handler deadline.
func WithHandlerTimeout(timeout time.Duration) ServerOpt {
	return func(opts *serverOpts) {
		opts.handlerTimeout = timeout
	}
}

// WithServerMetrics sets the metrics implementation.
func WithServerMetrics(m metrics.Metrics) ServerOpt {
	return func(opts *serverOpts) {
		opts.metrics = m
	}
}

// Server consumes envelopes from a service topic, executes the bound
// handler for each and publishes exactly one reply per envelope, including
// for handler crashes and exceeded deadlines. Inbound envelopes are
// processed concurrently, one goroutine per envelope.
type Server struct {
	*lifecycle.Lifecycle

	bus            spi.Bus
	topic          string
	router         *router.Router
	handlerTimeout time.Duration
	metrics        metrics.Metrics

	envelopeChan <-chan []byte
}

// NewServer subscribes to the service topic on the injected bus and returns
// a started Server dispatching to the given router.
func NewServer(bus spi.Bus, topic string, rtr *router.Router, opts ...ServerOpt) (*Server, error) {
	options := &serverOpts{
		handlerTimeout: DefaultHandlerTimeout,
		metrics:        noop.GetMetrics(),
	}

	for _, opt := range opts {
		opt(options)
	}

	s := &Server{
		bus:            bus,
		topic:          topic,
		router:         rtr,
		handlerTimeout: options.handlerTimeout,
		metrics:        options.metrics,
	}

	envelopeChan, err := bus.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to service topic [%s]: %w", topic, err)
	}

	s.envelopeChan = envelopeChan

	s.Lifecycle = lifecycle.New("rpc-server",
		lifecycle.WithStart(s.start),
	)

	s.Start()

	return s, nil
}

func (s *Server) start() {
	go s.listen()
}

func (s *Server) listen() {
	logger.Info("listening for commands", logfields.WithTopic(s.topic))

	for data := range s.envelopeChan {
		go s.handle(data)
	}

	logger.Info("service topic channel closed", logfields.WithTopic(s.topic))
}

func (s *Server) handle(data []byte) {
	startTime := time.Now()

	envelope := &spi.Envelope{}

	if err := json.Unmarshal(data, envelope); err != nil {
		// Without an envelope there is no reply address; drop.
		logger.Warn("dropping malformed envelope", logfields.WithTopic(s.topic), log.WithError(err))

		return
	}

	reply := s.dispatch(envelope)

	s.metrics.CommandHandleTime(time.Since(startTime))

	if err := s.sendReply(envelope, reply); err != nil {
		logger.Error("failed to publish reply", logfields.WithCommand(envelope.Command),
			logfields.WithCorrelationID(envelope.CorrelationID), log.WithError(err))
	}
}

// dispatch runs the handler under a bounded deadline. The handler cannot be
// forcibly stopped; if it outlives its deadline, a Timeout reply is emitted
// and the handler's own late outcome is discarded.
func (s *Server) dispatch(envelope *spi.Envelope) *spi.Reply {
	timeout := s.handlerTimeout
	if envelope.DeadlineMS > 0 {
		timeout = time.Duration(envelope.DeadlineMS) * time.Millisecond
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	replyChan := make(chan *spi.Reply, 1)

	go func() {
		replyChan <- s.router.Dispatch(ctx, envelope)
	}()

	select {
	case reply := <-replyChan:
		return reply
	case <-ctx.Done():
		logger.Warn("handler exceeded deadline", logfields.WithCommand(envelope.Command),
			logfields.WithCorrelationID(envelope.CorrelationID))

		return spi.NewErrorReply(envelope.CorrelationID,
			spi.NewError(spi.Timeout, "handler for command [%s] exceeded its %s deadline", envelope.Command, timeout))
	}
}

func (s *Server) sendReply(envelope *spi.Envelope, reply *spi.Reply) error {
	if envelope.ReplyTo == "" {
		logger.Debug("envelope carries no reply address", logfields.WithCommand(envelope.Command))

		return nil
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	return s.bus.Publish(context.Background(), envelope.ReplyTo, data)
}
