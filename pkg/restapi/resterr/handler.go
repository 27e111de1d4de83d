/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/messaging/spi"
)

var logger = log.New("rest-err")

type errorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// HTTPErrorHandler is installed as the echo error handler. It renders
// command failures with their kind and details preserved; everything else
// becomes a generic error body.
func HTTPErrorHandler(err error, c echo.Context) {
	code, body := processError(err)

	logger.Error("request failed", log.WithError(err),
		logfields.WithHTTPStatus(code))

	sendResponse(c, code, body)
}

func sendResponse(c echo.Context, code int, body interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		message, ok := echoErr.Message.(string)
		if !ok {
			message = err.Error()
		}

		return echoErr.Code, &errorResponse{Code: "http-error", Message: message}
	}

	var spiErr *spi.Error
	if errors.As(err, &spiErr) {
		descriptor := spiErr.Descriptor()

		return StatusFor(descriptor.Kind), &errorResponse{
			Code:    string(descriptor.Kind),
			Message: descriptor.Message,
			Details: descriptor.Details,
		}
	}

	return http.StatusInternalServerError, &errorResponse{
		Code:    "generic-error",
		Message: err.Error(),
	}
}
