/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"net/http"
	"time"

	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) AuthorityCallTime(_ string, _ time.Duration) {}
func (n *NoMetrics) CallbackProcessed(_ string)                  {}
func (n *NoMetrics) CredentialRevoked()                          {}

func (n *NoMetrics) InstrumentHTTPTransport(_ string, transport http.RoundTripper) http.RoundTripper {
	return transport
}
