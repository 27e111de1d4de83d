/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldCommand       = "command"
	FieldCorrelationID = "correlationId"
	FieldTopic         = "topic"
	FieldTxID          = "txId"
	FieldTxState       = "txState"
	FieldAgentURL      = "agentUrl"
	FieldHTTPStatus    = "httpStatus"
	FieldPanicValue    = "panicValue"
	FieldAuthor        = "author"
	FieldDuration      = "duration"
	FieldUserLogLevel  = "userLogLevel"
	FieldAddress       = "address"
)

// WithDuration sets the duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithCommand sets the command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithCorrelationID sets the correlationId field.
func WithCorrelationID(correlationID string) zap.Field {
	return zap.String(FieldCorrelationID, correlationID)
}

// WithTopic sets the topic field.
func WithTopic(topic string) zap.Field {
	return zap.String(FieldTopic, topic)
}

// WithTxID sets the txId field.
func WithTxID(txID string) zap.Field {
	return zap.String(FieldTxID, txID)
}

// WithTxState sets the txState field.
func WithTxState(state string) zap.Field {
	return zap.String(FieldTxState, state)
}

// WithAgentURL sets the agentUrl field.
func WithAgentURL(url string) zap.Field {
	return zap.String(FieldAgentURL, url)
}

// WithHTTPStatus sets the httpStatus field.
func WithHTTPStatus(status int) zap.Field {
	return zap.Int(FieldHTTPStatus, status)
}

// WithPanicValue sets the panicValue field.
func WithPanicValue(value interface{}) zap.Field {
	return zap.Any(FieldPanicValue, value)
}

// WithAuthor sets the author field.
func WithAuthor(author string) zap.Field {
	return zap.String(FieldAuthor, author)
}

// WithUserLogLevel sets the userLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithAddress sets the address field.
func WithAddress(address string) zap.Field {
	return zap.String(FieldAddress, address)
}
