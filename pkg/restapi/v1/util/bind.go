/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
)

const (
	requestBody = "requestBody"
)

// ReadBody binds the request body. An empty body leaves body untouched.
func ReadBody(ctx echo.Context, body interface{}) error {
	if err := ctx.Bind(body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}

	return nil
}

func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return err
		}

		return ctx.JSONBlob(code, b)
	}
}

// WriteOutputOrError writes output even when err is set, using the status code err maps to.
// It is used where a failed call still yields a body the client should read.
func WriteOutputOrError(ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err == nil || output == nil {
			return WriteOutput(ctx)(output, err)
		}

		return WriteOutputWithCode(StatusCode(err), ctx)(output, nil)
	}
}

func WriteRawOutputWithContentType(ctx echo.Context) func(output []byte, ct string, err error) error {
	return func(output []byte, ct string, err error) error {
		if err != nil {
			return err
		}

		return ctx.Blob(http.StatusOK, ct, output)
	}
}

// StatusCode returns the HTTP status an error maps to.
func StatusCode(err error) int {
	var customErr *resterr.CustomError

	if errors.As(err, &customErr) {
		code, _ := customErr.HTTPCodeMsg()

		return code
	}

	return http.StatusInternalServerError
}
