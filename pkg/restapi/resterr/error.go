/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ConfigurationError   ErrorCode = "configuration-error"
	Unauthorized         ErrorCode = "unauthorized"
	UnknownStatus        ErrorCode = "unknown-status"
	NotFound             ErrorCode = "not-found"
	UpstreamError        ErrorCode = "upstream-error"
	DeserializationError ErrorCode = "deserialization-error"
	InvalidValue         ErrorCode = "invalid-value"
	SystemError          ErrorCode = "system-error"
)

func (c ErrorCode) Name() string {
	return string(c)
}

// CustomError is an error with a code that maps to an HTTP status.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	FailedOperation string
	Component       Component
	Err             error
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewConfigurationError(incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           ConfigurationError,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

func NewUnknownStatusError(status string) *CustomError {
	return &CustomError{
		Code:           UnknownStatus,
		IncorrectValue: "requestStatus",
		Err:            fmt.Errorf("unknown request status %q", status),
	}
}

func NewNotFoundError(component Component, err error) *CustomError {
	return &CustomError{
		Code:      NotFound,
		Component: component,
		Err:       err,
	}
}

func NewUpstreamError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            UpstreamError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func NewDeserializationError(component Component, err error) *CustomError {
	return &CustomError{
		Code:      DeserializationError,
		Component: component,
		Err:       err,
	}
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func (e *CustomError) Error() string {
	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	}

	if e.FailedOperation != "" {
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the HTTP status and the {error, error_description} response body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code { //nolint:exhaustive
	case Unauthorized:
		code = http.StatusUnauthorized
	case UnknownStatus, InvalidValue, DeserializationError:
		code = http.StatusBadRequest
	case NotFound:
		code = http.StatusNotFound
	case UpstreamError:
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	return code, map[string]interface{}{
		"error":             e.Code.Name(),
		"error_description": e.Err.Error(),
	}
}

// GetErrorDetails returns the message, code and component of the first CustomError in err's chain.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), customErr.Code.Name(), customErr.Component
	}

	return err.Error(), "", ""
}

// Is reports whether err carries a CustomError with the given code.
func Is(err error, code ErrorCode) bool {
	var customErr *CustomError

	return errors.As(err, &customErr) && customErr.Code == code
}
