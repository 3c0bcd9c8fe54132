/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/verifiedid-relay/pkg/observability/health/healthutil"
)

const (
	Path           = "/healthcheck"
	defaultTimeout = 5 * time.Second
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Checks  []health.Check
	Timeout time.Duration
}

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

func NewController(router router, cfg *Config) *Controller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	times := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(timeout),
		health.WithInterceptors(times.Interceptor()),
	}

	for _, check := range cfg.Checks {
		opts = append(opts, health.WithCheck(check))
	}

	c := &Controller{
		handler: health.NewHandler(
			health.NewChecker(opts...),
			health.WithResultWriter(healthutil.NewJSONResultWriter(times)),
		),
	}

	router.GET(Path, c.GetHealthcheck)

	return c
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
