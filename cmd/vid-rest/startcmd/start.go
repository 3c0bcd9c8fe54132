/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/cmd/common"
	"github.com/trustbloc/verifiedid-relay/pkg/authority"
	"github.com/trustbloc/verifiedid-relay/pkg/oauth2client"
	redishealth "github.com/trustbloc/verifiedid-relay/pkg/observability/health/redis"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics/noop"
	promprovider "github.com/trustbloc/verifiedid-relay/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/tracing"
	callbacktracing "github.com/trustbloc/verifiedid-relay/pkg/observability/tracing/wrappers/callback"
	revocationtracing "github.com/trustbloc/verifiedid-relay/pkg/observability/tracing/wrappers/revocation"
	statustracing "github.com/trustbloc/verifiedid-relay/pkg/observability/tracing/wrappers/status"
	verifiedidtracing "github.com/trustbloc/verifiedid-relay/pkg/observability/tracing/wrappers/verifiedid"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/logapi"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/session"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/verifiedid"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/version"
	"github.com/trustbloc/verifiedid-relay/pkg/service/callback"
	"github.com/trustbloc/verifiedid-relay/pkg/service/requestbuilder"
	"github.com/trustbloc/verifiedid-relay/pkg/service/revocation"
	"github.com/trustbloc/verifiedid-relay/pkg/service/status"
	vidservice "github.com/trustbloc/verifiedid-relay/pkg/service/verifiedid"
	"github.com/trustbloc/verifiedid-relay/pkg/storage/correlationstore"
)

var logger = log.New("vid-rest")

const readHeaderTimeout = 10 * time.Second

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the server that serves the relay handler. Tests use it to skip listening.
func WithHTTPServer(server httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = server
	}
}

// WithVersion sets the build version reported by /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the deployment version reported by /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start vid-rest",
		Long:  "Start the Verified ID relay REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			if params.logLevel != "" {
				common.SetLogLevels(logger, params.logLevel)
			}

			shutdown, tracer, err := tracing.Initialize(params.tracingParams.exporter, params.tracingParams.serviceName)
			if err != nil {
				return fmt.Errorf("initialize tracing: %w", err)
			}

			defer shutdown()

			o := &startOpts{}

			for _, opt := range opts {
				opt(o)
			}

			e, closer, err := buildEchoHandler(params, tracer, o)
			if err != nil {
				return fmt.Errorf("failed to build echo handler: %w", err)
			}

			defer func() {
				if closeErr := closer(); closeErr != nil {
					logger.Warn("Failed to close store", log.WithError(closeErr))
				}
			}()

			if o.server == nil {
				o.server = &http.Server{
					Addr:              params.hostURL,
					Handler:           e,
					ReadHeaderTimeout: readHeaderTimeout,
				}
			}

			logger.Info("Starting vid-rest server", log.WithURL(params.hostURL))

			return serve(o.server, params.tlsParameters)
		},
	}
}

func serve(srv httpServer, tlsParams *tlsParameters) error {
	var err error

	if tlsParams.serveCertPath != "" || tlsParams.serveKeyPath != "" {
		err = srv.ListenAndServeTLS(tlsParams.serveCertPath, tlsParams.serveKeyPath)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// nolint: funlen
func buildEchoHandler(
	params *startupParameters,
	tracer trace.Tracer,
	opts *startOpts,
) (*echo.Echo, func() error, error) {
	isTraceEnabled := params.tracingParams.exporter != tracing.None

	var tracerProvider trace.TracerProvider
	if isTraceEnabled {
		tracerProvider = otel.GetTracerProvider()
	}

	store, err := common.InitStore(params.dbParameters, tracerProvider, logger)
	if err != nil {
		return nil, nil, err
	}

	correlations := correlationstore.New(store.KV)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())

	if isTraceEnabled {
		e.Use(otelecho.Middleware(params.tracingParams.serviceName,
			otelecho.WithSkipper(func(c echo.Context) bool {
				return c.Path() == healthcheck.Path
			}),
		))
	}

	m := setUpMetrics(e, params.metricsProviderName)

	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, nil, errors.Join(err, store.Close())
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12},
	}

	authorityClient := newAuthorityClient(params, transport, m)

	builder, err := requestbuilder.New(params.requestPolicy, correlations)
	if err != nil {
		return nil, nil, errors.Join(err, store.Close())
	}

	requests := vidservice.New(&vidservice.Config{
		RequestBuilder: builder,
		Authority:      authorityClient,
		Store:          correlations,
		ManifestURL:    params.requestPolicy.ManifestURL,
	})

	callbacks := callback.New(&callback.Config{
		APIKey:                   params.requestPolicy.APIKey,
		RevocationCredentialType: params.revocationType,
		Store:                    correlations,
		Metrics:                  m,
	})

	if params.authorityParameters.adminEndpoint == "" {
		logger.Warn("Admin endpoint is not configured, revocation calls will fail")
	}

	revocations := revocation.New(&revocation.Config{
		Contract:  params.authorityParameters.contract,
		Authority: authorityClient,
		Store:     correlations,
		Metrics:   m,
	})

	sessions, err := session.New(&session.Config{
		HashKey:  params.sessionParameters.hashKey,
		BlockKey: params.sessionParameters.blockKey,
		MaxAge:   sessionMaxAge(),
		Secure:   params.sessionParameters.secure,
	})
	if err != nil {
		return nil, nil, errors.Join(err, store.Close())
	}

	var checks []health.Check

	if store.Redis != nil {
		checks = append(checks, redishealth.Check(store.Redis))
	}

	healthcheck.NewController(e, &healthcheck.Config{Checks: checks})

	version.NewController(e, version.Config{
		Version:       opts.version,
		ServerVersion: opts.serverVersion,
	})

	logapi.NewController(e, &logapi.Config{OperatorAPIKey: params.operatorAPIKey})

	verifiedid.NewController(e, &verifiedid.Config{
		Requests:       verifiedidtracing.Wrap(requests, tracer),
		Callbacks:      callbacktracing.Wrap(callbacks, tracer),
		Status:         statustracing.Wrap(status.NewResolver(correlations, nil), tracer),
		Revocation:     revocationtracing.Wrap(revocations, tracer),
		Session:        sessions,
		OperatorAPIKey: params.operatorAPIKey,
	})

	return e, store.Close, nil
}

func newAuthorityClient(params *startupParameters, transport http.RoundTripper, m metrics.Metrics) *authority.Client {
	ap := params.authorityParameters

	tokenHTTPClient := &http.Client{
		Transport: m.InstrumentHTTPTransport(metrics.ClientTokenEndpoint, transport),
		Timeout:   params.authorityHTTPTimeout,
	}

	newTokens := func(scopes []string) *oauth2client.TokenAcquirer {
		return oauth2client.NewTokenAcquirer(oauth2client.Config{
			TokenURL:     ap.tokenURL,
			ClientID:     ap.clientID,
			ClientSecret: ap.clientSecret,
			Scopes:       scopes,
			HTTPClient:   tokenHTTPClient,
		})
	}

	return authority.New(&authority.Config{
		RequestURL:    ap.requestEndpoint,
		AdminEndpoint: ap.adminEndpoint,
		HTTPClient: &http.Client{
			Transport: m.InstrumentHTTPTransport(metrics.ClientAuthority, transport),
		},
		RequestTokens: newTokens(ap.requestScopes),
		AdminTokens:   newTokens(ap.adminScopes),
		Timeout:       params.authorityHTTPTimeout,
		Metrics:       m,
	})
}

func setUpMetrics(e *echo.Echo, providerName string) metrics.Metrics {
	if providerName != prometheusProvider {
		return noop.GetMetrics()
	}

	provider := promprovider.NewPrometheusProvider()

	if err := provider.Create(); err != nil {
		logger.Warn("Failed to create prometheus provider, metrics are off", log.WithError(err))

		return noop.GetMetrics()
	}

	h := promprovider.NewHandler()
	e.Add(h.Method(), h.Path(), echo.WrapHandler(h.Handler()))

	return provider.Metrics()
}
