/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package healthutil augments the health endpoint output with per-check
// response times.
package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]checkResult    `json:"components,omitempty"`
}

type checkResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter renders checker results as JSON, annotated with the
// response times recorded by ResponseTimeInterceptor.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
}

// NewJSONResultWriter returns a writer reading response times from rt.
func NewJSONResultWriter(rt *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: rt,
	}
}

// Write implements the health.ResultWriter interface.
func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int,
	w http.ResponseWriter, _ *http.Request) error {
	r := &healthStatus{Status: result.Status}

	if result.Details != nil {
		r.Components = map[string]checkResult{}

		for name, cr := range *result.Details {
			res := checkResult{CheckResult: cr}

			if t, ok := rw.responseTimes.Get(name); ok {
				res.LastResponseTime = t.LastResponseTime.String()
				res.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = res
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal health response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
