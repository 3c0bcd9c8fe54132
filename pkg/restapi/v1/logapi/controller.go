/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/mw"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go -mock_names router=Mockrouter

const (
	Path = "/loglevels"

	maxSpecSize = 4 << 10
)

var logger = log.New("logapi")

type Controller struct {
}

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Config holds the log level API settings.
type Config struct {
	// OperatorAPIKey protects the endpoint. The endpoint is not registered when it is empty.
	OperatorAPIKey string
}

// NewController registers POST /loglevels behind the operator key. It returns nil when no key is set.
func NewController(router router, cfg *Config) *Controller {
	if cfg.OperatorAPIKey == "" {
		logger.Info("Operator API key is not set, log level API is disabled")

		return nil
	}

	c := &Controller{}

	router.POST(Path, c.PostLogLevels, mw.APIKeyAuth(cfg.OperatorAPIKey))

	return c
}

// PostLogLevels updates log levels. The body is a log spec such as callback=DEBUG:INFO.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	req := ctx.Request()

	logLevelBytes, err := io.ReadAll(io.LimitReader(req.Body, maxSpecSize))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := string(logLevelBytes)

	if err := log.SetSpec(logLevels); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "logLevels",
			fmt.Errorf("failed to set log spec: %w", err))
	}

	logger.Info(fmt.Sprintf("log levels modified to: %s", logLevels))
	return ctx.NoContent(http.StatusOK)
}
