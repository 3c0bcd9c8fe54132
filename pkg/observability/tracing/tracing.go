/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"
	tracerName                    = "https://github.com/trustbloc/verifiedid-relay"
)

var errNoJaegerEndpoint = errors.New("neither agent nor collector endpoint is provided")

// IsExporterSupported reports whether Initialize accepts the exporter type.
func IsExporterSupported(exporter SpanExporterType) bool {
	switch strings.ToUpper(exporter) {
	case None, Jaeger, Stdout:
		return true
	default:
		return false
	}
}

// Initialize creates and registers globally a new tracer provider with specified span exporter.
// The returned func shuts the provider down and must be called before the process exits.
func Initialize(exporter SpanExporterType, serviceName string) (func(), trace.Tracer, error) {
	exporter = strings.ToUpper(exporter)

	if exporter == None {
		return func() {}, noop.NewTracerProvider().Tracer(""), nil
	}

	spanExporter, err := newSpanExporter(exporter)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ProcessPIDKey.Int(os.Getpid()),
		)),
	)

	otel.SetTracerProvider(tracerProvider)

	// Propagate trace context via traceparent and tracestate headers (https://www.w3.org/TR/trace-context/).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(err))
		}
	}, tracerProvider.Tracer(tracerName), nil
}

func newSpanExporter(exporter SpanExporterType) (tracesdk.SpanExporter, error) {
	switch exporter {
	case Jaeger:
		var endpoint jaeger.EndpointOption

		switch {
		case os.Getenv(JaegerAgentEndpointEnvKey) != "":
			endpoint = jaeger.WithAgentEndpoint()
		case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
			endpoint = jaeger.WithCollectorEndpoint()
		default:
			return nil, errNoJaegerEndpoint
		}

		spanExporter, err := jaeger.New(endpoint)
		if err != nil {
			return nil, fmt.Errorf("create jaeger exporter: %w", err)
		}

		return spanExporter, nil
	case Stdout:
		spanExporter, err := stdouttrace.New()
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}

		return spanExporter, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}
}
