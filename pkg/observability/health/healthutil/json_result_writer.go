/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

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

// JSONResultWriter renders checker results together with the observed response times.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
}

func NewJSONResultWriter(times *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: times,
	}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthStatus{Status: result.Status}

	if len(result.Details) > 0 {
		r.Components = make(map[string]checkResult, len(result.Details))

		for name, cr := range result.Details {
			c := checkResult{CheckResult: cr}

			if t, ok := rw.responseTimes.Get(name); ok {
				c.LastResponseTime = t.LastResponseTime.String()
				c.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = c
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
