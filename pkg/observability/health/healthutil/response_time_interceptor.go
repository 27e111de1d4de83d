/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState holds the last and running-average response time of a
// single health check.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes records per-check response times. Safe for concurrent use by
// the interceptor and the result writer.
type ResponseTimes struct {
	mu sync.RWMutex
	m  map[string]ResponseTimeState
}

// NewResponseTimes returns an empty response-time record.
func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{m: make(map[string]ResponseTimeState)}
}

// Record folds elapsed into the named check's state.
func (rt *ResponseTimes) Record(name string, elapsed time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if prev, ok := rt.m[name]; ok {
		rt.m[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2,
		}
	} else {
		rt.m[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: elapsed,
		}
	}
}

// Get returns the recorded state for the named check.
func (rt *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	state, ok := rt.m[name]

	return state, ok
}

// ResponseTimeInterceptor records check response times into rt.
func ResponseTimeInterceptor(rt *ResponseTimes) health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			rt.Record(name, time.Since(start))

			return result
		}
	}
}
