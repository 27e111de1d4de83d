/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package resterr translates command-layer failures into HTTP responses.
package resterr

import (
	"net/http"

	"github.com/credentia/platform/pkg/messaging/spi"
)

// statusByKind maps each command failure kind to exactly one HTTP status.
var statusByKind = map[spi.ErrorKind]int{
	spi.UnknownCommand:          http.StatusNotFound,
	spi.Timeout:                 http.StatusGatewayTimeout,
	spi.Unreachable:             http.StatusServiceUnavailable,
	spi.InvalidPayload:          http.StatusBadRequest,
	spi.HandlerError:            http.StatusInternalServerError,
	spi.DuplicateCommand:        http.StatusInternalServerError,
	spi.InvalidTransactionState: http.StatusConflict,
	spi.EndorsementUnavailable:  http.StatusBadGateway,
	spi.LedgerRejected:          http.StatusUnprocessableEntity,
	spi.AgentOperationFailed:    http.StatusBadGateway,
	spi.Unimplemented:           http.StatusNotImplemented,
}

// StatusFor returns the HTTP status for a command failure kind. Kinds
// outside the closed set map to 500.
func StatusFor(kind spi.ErrorKind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}
