/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "vid"

	// Authority outbound calls.
	Authority               = "authority"
	AuthorityCallTimeMetric = "call_seconds"

	// Callback webhook handling.
	Callback              = "callback"
	CallbackOutcomeMetric = "processed_total"

	// Revocation operations.
	Revocation             = "revocation"
	RevocationRevokeMetric = "revoked_total"
)

// HTTP clients instrumented with InstrumentHTTPTransport.
const (
	ClientAuthority     = "authority"
	ClientTokenEndpoint = "token-endpoint"
)

// Callback outcomes.
const (
	OutcomeAccepted      = "accepted"
	OutcomeOverridden    = "overridden"
	OutcomeUnauthorized  = "unauthorized"
	OutcomeUnknownStatus = "unknown_status"
	OutcomeError         = "error"
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
	AuthorityCallTime(operation string, value time.Duration)
	CallbackProcessed(outcome string)
	CredentialRevoked()
	InstrumentHTTPTransport(client string, transport http.RoundTripper) http.RoundTripper
}
