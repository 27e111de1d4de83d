/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package redismq implements the messaging bus on Redis pub/sub. Reply
// topics are plain channels, which gives the point-to-point reply
// addressing the RPC layer needs: only the subscriber that created a reply
// inbox listens on it.
package redismq

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/lifecycle"

	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("redis-bus")

const (
	defaultTimeout    = 15 * time.Second
	defaultBufferSize = 250
)

type busOpts struct {
	masterName    string
	password      string
	tlsConfig     *tls.Config
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// Opt sets a Bus option.
type Opt func(opts *busOpts)

// WithMasterName sets the name of the sentinel master.
func WithMasterName(masterName string) Opt {
	return func(opts *busOpts) {
		opts.masterName = masterName
	}
}

// WithPassword sets the password.
func WithPassword(password string) Opt {
	return func(opts *busOpts) {
		opts.password = password
	}
}

// WithTLSConfig sets the TLS config.
func WithTLSConfig(tlsConfig *tls.Config) Opt {
	return func(opts *busOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithTimeout sets the connect timeout.
func WithTimeout(timeout time.Duration) Opt {
	return func(opts *busOpts) {
		opts.timeout = timeout
	}
}

// WithTraceProvider enables tracing on the underlying client.
func WithTraceProvider(traceProvider trace.TracerProvider) Opt {
	return func(opts *busOpts) {
		opts.traceProvider = traceProvider
	}
}

// Bus is a Redis-backed publish/subscribe bus.
type Bus struct {
	*lifecycle.Lifecycle

	client redis.UniversalClient

	mutex         sync.Mutex
	subscriptions []*redis.PubSub
}

// New connects to Redis and returns a started Bus. The type of the
// underlying client depends on the following conditions:
//
// 1. If the MasterName option is specified, a sentinel-backed FailoverClient is used.
// 2. if the number of Addrs is two or more, a ClusterClient is used.
// 3. Otherwise, a single-node Client is used.
func New(addrs []string, opts ...Opt) (*Bus, error) {
	opt := &busOpts{
		timeout: defaultTimeout,
	}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	if opt.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	b := &Bus{
		client: client,
	}

	b.Lifecycle = lifecycle.New("redis-bus", lifecycle.WithStop(b.stop))

	b.Start()

	return b, nil
}

// Client returns the underlying redis client so collaborators such as the
// distributed locker can share the connection.
func (b *Bus) Client() redis.UniversalClient {
	return b.client
}

// Publish publishes the message to the given topic.
func (b *Bus) Publish(ctx context.Context, topic string, data []byte) error {
	if b.State() != lifecycle.StateStarted {
		return lifecycle.ErrNotStarted
	}

	if err := b.client.Publish(ctx, topic, data).Err(); err != nil {
		return fmt.Errorf("publish to topic [%s]: %w", topic, err)
	}

	return nil
}

// Subscribe subscribes to a topic. The returned channel is closed when the
// bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	if b.State() != lifecycle.StateStarted {
		return nil, lifecycle.ErrNotStarted
	}

	logger.Debug("subscribing to topic", logfields.WithTopic(topic))

	pubSub := b.client.Subscribe(ctx, topic)

	// Receive forces the subscription to be established before the first
	// publish can race it.
	if _, err := pubSub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	b.mutex.Lock()
	b.subscriptions = append(b.subscriptions, pubSub)
	b.mutex.Unlock()

	msgChan := make(chan []byte, defaultBufferSize)

	go func() {
		defer close(msgChan)

		for msg := range pubSub.Channel() {
			msgChan <- []byte(msg.Payload)
		}
	}()

	return msgChan, nil
}

// Close closes all subscriptions and the underlying client.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

func (b *Bus) stop() {
	logger.Info("stopping bus...")

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, pubSub := range b.subscriptions {
		if err := pubSub.Close(); err != nil {
			logger.Warn("error closing subscription", log.WithError(err))
		}
	}

	b.subscriptions = nil

	if err := b.client.Close(); err != nil {
		logger.Warn("error closing redis client", log.WithError(err))
	}

	logger.Info("... bus stopped.")
}
