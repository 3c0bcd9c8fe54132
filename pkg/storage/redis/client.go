/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultPingInterval = time.Second
)

var logger = log.New("redis-client")

type clientOpts struct {
	masterName    string
	password      string
	tlsConfig     *tls.Config
	timeout       time.Duration
	pingRetries   uint64
	pingInterval  time.Duration
	traceProvider trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithTimeout bounds each connection attempt made by New.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithPingRetries makes New wait for the server, retrying the initial ping up to n more times.
func WithPingRetries(n uint64, interval time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.pingRetries = n
		opts.pingInterval = interval
	}
}

// Client wraps the universal client shared by the correlation store and the health check.
type Client struct {
	client redis.UniversalClient
}

// New returns new redis.UniversalClient.
// The type of the returned client depends
// on the following conditions:
//
// 1. If the MasterName option is specified, a sentinel-backed FailoverClient is returned.
// 2. if the number of Addrs is two or more, a ClusterClient is returned.
// 3. Otherwise, a single-node Client is returned.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{
		timeout:      defaultTimeout,
		pingInterval: defaultPingInterval,
	}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	if opt.traceProvider != nil {
		err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider))
		if err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
		defer cancel()

		return client.Ping(ctx).Err()
	}

	err := backoff.RetryNotify(ping,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(opt.pingInterval), opt.pingRetries),
		func(err error, d time.Duration) {
			logger.Warn("Redis is not reachable yet", log.WithError(err), log.WithDuration(d))
		},
	)
	if err != nil {
		_ = client.Close() //nolint:errcheck

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// Ping checks that the server answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) API() redis.UniversalClient {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}
