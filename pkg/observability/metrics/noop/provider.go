/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/credentia/platform/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) CommandCallTime(_ time.Duration)           {}
func (n *NoMetrics) CommandCallErrorIncrement()                {}
func (n *NoMetrics) CommandHandleTime(_ time.Duration)         {}
func (n *NoMetrics) LateReplyIncrement()                       {}
func (n *NoMetrics) EndorsementTransitionTime(_ time.Duration) {}
