/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct{}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// Metrics are exposed through Handler on the main router.
func NewPrometheusProvider() metrics.Provider {
	return &promProvider{}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	GetMetrics()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the relay.
type PromMetrics struct {
	authorityCallTime *prometheus.HistogramVec
	callbacks         *prometheus.CounterVec
	revocations       prometheus.Counter
	clientRequests    *prometheus.HistogramVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		authorityCallTime: newAuthorityCallTime(),
		callbacks:         newCallbacks(),
		revocations:       newRevocations(),
		clientRequests:    newClientRequests(),
	}

	registerMetrics(pm)

	return pm
}

// AuthorityCallTime records the duration of an outbound authority call.
func (pm *PromMetrics) AuthorityCallTime(operation string, value time.Duration) {
	pm.authorityCallTime.WithLabelValues(operation).Observe(value.Seconds())

	logger.Debug("authority call time", log.WithDuration(value), logfields.WithOperation(operation))
}

// CallbackProcessed counts a processed webhook by outcome.
func (pm *PromMetrics) CallbackProcessed(outcome string) {
	pm.callbacks.WithLabelValues(outcome).Inc()
}

// CredentialRevoked counts a confirmed revocation.
func (pm *PromMetrics) CredentialRevoked() {
	pm.revocations.Inc()
}

// InstrumentHTTPTransport observes request durations of an outbound HTTP client.
func (pm *PromMetrics) InstrumentHTTPTransport(client string, transport http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperDuration(
		pm.clientRequests.MustCurryWith(prometheus.Labels{"client": client}), transport)
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.authorityCallTime, pm.callbacks, pm.revocations, pm.clientRequests,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogramVec(subsystem, name, help string, labelNames ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newAuthorityCallTime() *prometheus.HistogramVec {
	return newHistogramVec(
		metrics.Authority, metrics.AuthorityCallTimeMetric,
		"The time (in seconds) it takes to complete a call to the verification authority.",
		"operation",
	)
}

func newCallbacks() *prometheus.CounterVec {
	return newCounterVec(
		metrics.Callback, metrics.CallbackOutcomeMetric,
		"The number of authority callbacks processed, by outcome.",
		"outcome",
	)
}

func newRevocations() prometheus.Counter {
	return newCounter(
		metrics.Revocation, metrics.RevocationRevokeMetric,
		"The number of credentials revoked through the operator endpoint.",
		nil,
	)
}

func newClientRequests() *prometheus.HistogramVec {
	return newHistogramVec(
		"http_client", "request_seconds",
		"The time (in seconds) outbound HTTP requests take, by client.",
		"client", "code", "method",
	)
}
