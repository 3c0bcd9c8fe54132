/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
)

const (
	// DefaultHeader carries the operator API key.
	DefaultHeader   = "X-API-Key"
	healthCheckPath = "/healthcheck"
)

type options struct {
	header    string
	skipPaths []string
}

type Opt func(o *options)

// WithHeader reads the key from the given header instead of DefaultHeader.
func WithHeader(name string) Opt {
	return func(o *options) {
		o.header = name
	}
}

// WithSkipPaths lets requests whose path ends with one of the suffixes through unauthenticated.
func WithSkipPaths(suffixes ...string) Opt {
	return func(o *options) {
		o.skipPaths = append(o.skipPaths, suffixes...)
	}
}

// APIKeyAuth returns a middleware that authenticates requests by a shared API key.
// An empty configured key rejects every request.
func APIKeyAuth(apiKey string, opts ...Opt) echo.MiddlewareFunc {
	o := &options{
		header:    DefaultHeader,
		skipPaths: []string{healthCheckPath},
	}

	for _, opt := range opts {
		opt(o)
	}

	expected := []byte(apiKey)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := strings.ToLower(c.Request().URL.Path)

			for _, suffix := range o.skipPaths {
				if strings.HasSuffix(path, suffix) {
					return next(c)
				}
			}

			got := []byte(c.Request().Header.Get(o.header))

			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				return resterr.NewUnauthorizedError(errors.New("missing or invalid api key"))
			}

			return next(c)
		}
	}
}
