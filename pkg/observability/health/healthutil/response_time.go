/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes tracks how long each named check takes. It is shared by the checker
// interceptor and the result writer.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.states[name]

	return st, ok
}

func (r *ResponseTimes) observe(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.states[name]
	if !ok {
		r.states[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: elapsed,
		}

		return
	}

	r.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (st.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}

// Interceptor records the duration of every check execution.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			r.observe(name, time.Since(start))

			return result
		}
	}
}
