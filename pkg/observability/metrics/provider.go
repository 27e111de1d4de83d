/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "platform"

	// Messaging operations.
	Messaging                   = "messaging"
	MessagingCallTimeMetric     = "messaging_call_seconds"
	MessagingHandleTimeMetric   = "messaging_handle_seconds"
	MessagingCallErrorMetric    = "messaging_call_errors_total"
	MessagingLateRepliesMetric  = "messaging_late_replies_total"

	// Endorsement operations.
	Endorsement                     = "endorsement"
	EndorsementTransitionTimeMetric = "endorsement_transition_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	CommandCallTime(value time.Duration)
	CommandCallErrorIncrement()
	CommandHandleTime(value time.Duration)
	LateReplyIncrement()
	EndorsementTransitionTime(value time.Duration)
}
