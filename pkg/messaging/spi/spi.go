/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package spi defines the service provider interfaces for the command
// messaging layer: the envelope and reply wire shapes, the closed error
// taxonomy surfaced by the RPC layer, and the bus contract any transport
// implementation must satisfy.
package spi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind identifies a failure class surfaced by the messaging layer.
// The set is closed: new kinds require a contract change between the
// gateway and every service.
type ErrorKind string

const (
	// UnknownCommand is returned when an envelope names a command that no
	// handler is registered for.
	UnknownCommand ErrorKind = "unknown_command"
	// Timeout is returned when no reply arrives within the caller's window,
	// or when a handler exceeds its server-side deadline.
	Timeout ErrorKind = "timeout"
	// Unreachable is returned on transport-level failure (connection lost,
	// publish refused, no responder on the topic).
	Unreachable ErrorKind = "unreachable"
	// InvalidPayload is returned when a command payload fails schema
	// validation before reaching its handler.
	InvalidPayload ErrorKind = "invalid_payload"
	// HandlerError wraps a domain-specific failure raised by a handler.
	HandlerError ErrorKind = "handler_error"
	// DuplicateCommand is a registration-time failure: the same command name
	// was bound twice within one service.
	DuplicateCommand ErrorKind = "duplicate_command"

	// InvalidTransactionState is returned when an endorsement transaction
	// step is invoked from a state that does not permit it.
	InvalidTransactionState ErrorKind = "invalid_transaction_state"
	// EndorsementUnavailable is returned when the endorsement endpoint of
	// the ledger agent cannot be reached.
	EndorsementUnavailable ErrorKind = "endorsement_unavailable"
	// LedgerRejected is returned when the ledger refuses a submitted write.
	LedgerRejected ErrorKind = "ledger_rejected"

	// AgentOperationFailed is returned when the external agent API answers
	// a forwarded operation with a non-2xx status.
	AgentOperationFailed ErrorKind = "agent_operation_failed"

	// Unimplemented marks a catalog entry that is reserved but has no
	// handler logic yet (revocation registry lifecycle).
	Unimplemented ErrorKind = "unimplemented"
)

// ErrorDescriptor is the structured failure carried by an error Reply.
// It crosses service boundaries verbatim: the gateway translates it to an
// HTTP status without further inspection of Details.
type ErrorDescriptor struct {
	Kind    ErrorKind       `json:"kind"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// Error is the in-process representation of an ErrorDescriptor. It is what
// the RPC client returns to callers and what handlers return to the RPC
// server.
type Error struct {
	Kind    ErrorKind
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Descriptor converts the error to its wire shape.
func (e *Error) Descriptor() *ErrorDescriptor {
	return &ErrorDescriptor{
		Kind:    e.Kind,
		Message: e.Message,
		Details: e.Details,
	}
}

// NewError returns a messaging error of the given kind.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Status of a Reply.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Envelope wraps a command with its correlation metadata. It is created by
// the RPC client, consumed exactly once by the RPC server and never mutated
// after send.
type Envelope struct {
	// Command is the stable operation name, e.g. "agent-create-schema".
	Command string `json:"command"`

	// Payload is the command-specific body. The router leaves it opaque;
	// the receiving handler validates it.
	Payload json.RawMessage `json:"payload,omitempty"`

	// CorrelationID pairs the envelope with its reply. Unique for the
	// lifetime of the pending call window.
	CorrelationID string `json:"correlationId"`

	// ReplyTo is the topic the reply must be published to.
	ReplyTo string `json:"replyTo"`

	// DeadlineMS optionally carries the caller's timeout, in milliseconds,
	// so the server can bound handler execution to roughly the same window.
	DeadlineMS int64 `json:"deadlineMs,omitempty"`
}

// Reply is the single response produced for an Envelope.
type Reply struct {
	CorrelationID string           `json:"correlationId"`
	Status        Status           `json:"status"`
	Body          json.RawMessage  `json:"body,omitempty"`
	Error         *ErrorDescriptor `json:"error,omitempty"`
}

// NewOKReply builds a success reply for the given correlation identifier.
func NewOKReply(correlationID string, body json.RawMessage) *Reply {
	return &Reply{
		CorrelationID: correlationID,
		Status:        StatusOK,
		Body:          body,
	}
}

// NewErrorReply builds an error reply carrying the descriptor of err. A
// non-messaging error is wrapped as HandlerError so that domain failures
// still cross the wire with a stable kind.
func NewErrorReply(correlationID string, err error) *Reply {
	return &Reply{
		CorrelationID: correlationID,
		Status:        StatusError,
		Error:         AsDescriptor(err),
	}
}

// AsDescriptor converts any error to an ErrorDescriptor, wrapping unknown
// error types as HandlerError.
func AsDescriptor(err error) *ErrorDescriptor {
	var e *Error
	if errors.As(err, &e) {
		return e.Descriptor()
	}

	return &ErrorDescriptor{
		Kind:    HandlerError,
		Message: err.Error(),
	}
}
