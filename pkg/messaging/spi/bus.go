/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import "context"

// Publisher publishes raw messages to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, data []byte) error
}

// Subscriber delivers raw messages from a topic. The returned channel is
// closed when the subscription ends (bus closed or context cancelled).
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
}

// Bus is a publish/subscribe transport with point-to-point reply
// addressing: publishing to a reply topic reaches exactly the subscriber
// that created it. Any bus with request/reply capability satisfies this.
type Bus interface {
	Publisher
	Subscriber

	Close() error
}
