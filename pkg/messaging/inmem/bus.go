/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package inmem implements the messaging bus using Go channels. This
// implementation works only on a single node, i.e. subscribers are not
// distributed. In order to distribute the load across a cluster, the Redis
// bus (or another broker with request/reply addressing) should instead be
// used.
package inmem

import (
	"context"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/lifecycle"
)

var logger = log.New("inmem-bus")

const defaultBufferSize = 250

type entry struct {
	topic string
	data  []byte
}

// Bus is a single-node publish/subscribe bus.
type Bus struct {
	*lifecycle.Lifecycle

	subscribers map[string][]chan []byte
	mutex       sync.RWMutex

	publishChan chan *entry
	doneChan    chan struct{}
}

// New returns a started in-memory bus.
func New() *Bus {
	b := &Bus{
		subscribers: make(map[string][]chan []byte),
		publishChan: make(chan *entry, defaultBufferSize),
		doneChan:    make(chan struct{}),
	}

	b.Lifecycle = lifecycle.New("inmem-bus", lifecycle.WithStop(b.stop))

	go b.processMessages()

	b.Start()

	return b
}

// Close closes all resources.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

func (b *Bus) stop() {
	logger.Info("stopping bus...")

	b.doneChan <- struct{}{}

	<-b.doneChan

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, msgChans := range b.subscribers {
		for _, msgChan := range msgChans {
			close(msgChan)
		}
	}

	b.subscribers = nil

	logger.Info("... bus stopped.")
}

// Subscribe subscribes to a topic and returns the Go channel over which
// messages are sent. The returned channel will be closed when Close() is
// called on this struct.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan []byte, error) {
	if b.State() != lifecycle.StateStarted {
		return nil, lifecycle.ErrNotStarted
	}

	logger.Debug("subscribing to topic", logfields.WithTopic(topic))

	b.mutex.Lock()
	defer b.mutex.Unlock()

	msgChan := make(chan []byte, defaultBufferSize)

	b.subscribers[topic] = append(b.subscribers[topic], msgChan)

	return msgChan, nil
}

// Publish publishes the given message to the given topic. This function
// returns immediately after sending the message to the internal publish
// channel; delivery to subscribers is asynchronous.
func (b *Bus) Publish(_ context.Context, topic string, data []byte) error {
	if b.State() != lifecycle.StateStarted {
		return lifecycle.ErrNotStarted
	}

	b.publishChan <- &entry{
		topic: topic,
		data:  data,
	}

	return nil
}

func (b *Bus) processMessages() {
	for {
		select {
		case entry := <-b.publishChan:
			b.publish(entry)

		case <-b.doneChan:
			b.doneChan <- struct{}{}

			logger.Debug("... publisher has stopped")

			return
		}
	}
}

func (b *Bus) publish(entry *entry) {
	b.mutex.RLock()
	subscribers := b.subscribers[entry.topic]
	b.mutex.RUnlock()

	if len(subscribers) == 0 {
		logger.Debug("no subscribers for topic", logfields.WithTopic(entry.topic))

		return
	}

	for _, subscriber := range subscribers {
		subscriber <- entry.data
	}
}
