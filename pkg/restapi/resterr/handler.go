/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("rest-err")

func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Errorc(ctx, "HTTP request failed",
			log.WithURL(c.Request().RequestURI), log.WithHTTPStatus(code), log.WithError(err))

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var (
		httpErr   *echo.HTTPError
		customErr *CustomError
	)

	switch {
	case errors.As(err, &customErr):
		return customErr.HTTPCodeMsg()
	case errors.As(err, &httpErr):
		message := httpErr.Message
		if httpErr.Internal != nil {
			message = httpErr.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"error":             http.StatusText(httpErr.Code),
				"error_description": strMsg,
			}
		}

		return httpErr.Code, message
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"error":             SystemError.Name(),
			"error_description": err.Error(),
		}
	}
}
