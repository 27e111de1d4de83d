/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rpc implements synchronous request/reply semantics over an
// asynchronous publish/subscribe bus. The Client correlates each call with
// its reply; the Server binds command handlers and guarantees that exactly
// one reply is produced per envelope.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/lifecycle"
	"github.com/credentia/platform/pkg/messaging/spi"
	"github.com/credentia/platform/pkg/observability/metrics"
	"github.com/credentia/platform/pkg/observability/metrics/noop"
)

var logger = log.New("messaging-rpc")

const (
	// DefaultCallTimeout bounds a call when the caller's context carries no
	// deadline of its own.
	DefaultCallTimeout = 15 * time.Second

	replyTopicPrefix = "platform.reply."
)

type clientOpts struct {
	callTimeout time.Duration
	metrics     metrics.Metrics
}

// ClientOpt sets a Client option.
type ClientOpt func(opts *clientOpts)

// WithCallTimeout overrides the default per-call timeout.
func WithCallTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.callTimeout = timeout
	}
}

// WithClientMetrics sets the metrics implementation.
func WithClientMetrics(m metrics.Metrics) ClientOpt {
	return func(opts *clientOpts) {
		opts.metrics = m
	}
}

// Client issues commands over the bus and waits for correlated replies.
// Many calls may be in flight at once; each is matched to its reply by a
// correlation identifier that is unique for the lifetime of its pending
// window. A single reply inbox topic is shared by all calls of one Client.
type Client struct {
	*lifecycle.Lifecycle

	bus         spi.Bus
	replyTopic  string
	callTimeout time.Duration
	metrics     metrics.Metrics

	mutex   sync.Mutex
	pending map[string]chan *spi.Reply

	replyChan <-chan []byte
}

// NewClient subscribes a fresh reply inbox on the bus and returns a started
// Client. The bus handle is injected; the Client holds no process-wide state.
func NewClient(bus spi.Bus, opts ...ClientOpt) (*Client, error) {
	options := &clientOpts{
		callTimeout: DefaultCallTimeout,
		metrics:     noop.GetMetrics(),
	}

	for _, opt := range opts {
		opt(options)
	}

	c := &Client{
		bus:         bus,
		replyTopic:  replyTopicPrefix + uuid.NewString(),
		callTimeout: options.callTimeout,
		metrics:     options.metrics,
		pending:     make(map[string]chan *spi.Reply),
	}

	replyChan, err := bus.Subscribe(context.Background(), c.replyTopic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to reply topic [%s]: %w", c.replyTopic, err)
	}

	c.replyChan = replyChan

	c.Lifecycle = lifecycle.New("rpc-client",
		lifecycle.WithStart(c.start),
	)

	c.Start()

	return c, nil
}

// ReplyTopic returns the client's reply inbox topic.
func (c *Client) ReplyTopic() string {
	return c.replyTopic
}

// Call publishes the command to the given service topic and blocks the
// calling goroutine until the correlated reply arrives or the window
// elapses. Other concurrent calls are unaffected.
//
// A reply with error status is returned as *spi.Error with the descriptor
// propagated unchanged. A timed-out call returns Timeout and any reply
// arriving afterwards is discarded.
func (c *Client) Call(ctx context.Context, topic, command string, payload json.RawMessage) (json.RawMessage, error) {
	startTime := time.Now()

	body, err := c.call(ctx, topic, command, payload)

	c.metrics.CommandCallTime(time.Since(startTime))

	if err != nil {
		c.metrics.CommandCallErrorIncrement()
	}

	return body, err
}

func (c *Client) call(ctx context.Context, topic, command string, payload json.RawMessage) (json.RawMessage, error) {
	timeout := c.callTimeout

	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	envelope := &spi.Envelope{
		Command:       command,
		Payload:       payload,
		CorrelationID: uuid.NewString(),
		ReplyTo:       c.replyTopic,
		DeadlineMS:    timeout.Milliseconds(),
	}

	waiter := c.addWaiter(envelope.CorrelationID)
	defer c.removeWaiter(envelope.CorrelationID)

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	logger.Debug("sending command", logfields.WithCommand(command), logfields.WithTopic(topic),
		logfields.WithCorrelationID(envelope.CorrelationID))

	if err := c.bus.Publish(ctx, topic, data); err != nil {
		return nil, spi.NewError(spi.Unreachable, "publish command [%s] to topic [%s]: %v", command, topic, err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-waiter:
		if reply.Status == spi.StatusError {
			return nil, descriptorToError(reply.Error)
		}

		return reply.Body, nil
	case <-timer.C:
		return nil, spi.NewError(spi.Timeout, "no reply for command [%s] within %s", command, timeout)
	case <-ctx.Done():
		return nil, spi.NewError(spi.Timeout, "call for command [%s] cancelled: %v", command, ctx.Err())
	}
}

func (c *Client) start() {
	go c.listen()
}

func (c *Client) listen() {
	for data := range c.replyChan {
		reply := &spi.Reply{}

		if err := json.Unmarshal(data, reply); err != nil {
			logger.Warn("dropping malformed reply", log.WithError(err))

			continue
		}

		c.deliver(reply)
	}

	logger.Debug("reply channel closed", logfields.WithTopic(c.replyTopic))
}

// deliver hands the reply to its pending waiter. Replies whose waiter is
// gone (already timed out) are dropped so a result is never delivered
// twice for one call.
func (c *Client) deliver(reply *spi.Reply) {
	c.mutex.Lock()
	waiter, ok := c.pending[reply.CorrelationID]
	if ok {
		delete(c.pending, reply.CorrelationID)
	}
	c.mutex.Unlock()

	if !ok {
		logger.Debug("discarding late reply", logfields.WithCorrelationID(reply.CorrelationID))

		c.metrics.LateReplyIncrement()

		return
	}

	waiter <- reply
}

func (c *Client) addWaiter(correlationID string) chan *spi.Reply {
	waiter := make(chan *spi.Reply, 1)

	c.mutex.Lock()
	c.pending[correlationID] = waiter
	c.mutex.Unlock()

	return waiter
}

func (c *Client) removeWaiter(correlationID string) {
	c.mutex.Lock()
	delete(c.pending, correlationID)
	c.mutex.Unlock()
}

// PendingCalls returns the number of calls currently awaiting a reply.
func (c *Client) PendingCalls() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.pending)
}

func descriptorToError(descriptor *spi.ErrorDescriptor) *spi.Error {
	if descriptor == nil {
		return spi.NewError(spi.HandlerError, "reply carried error status without a descriptor")
	}

	return &spi.Error{
		Kind:    descriptor.Kind,
		Message: descriptor.Message,
		Details: descriptor.Details,
	}
}
