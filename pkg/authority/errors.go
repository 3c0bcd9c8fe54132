/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package authority

import (
	"fmt"

	"github.com/tidwall/gjson"
)

const genericUserMessage = "Something went wrong while contacting the verification service. Please try again later."

// userMessages maps authority error codes to messages that are safe to show to end users.
// Inner codes are more specific and take precedence.
var userMessages = map[string]string{ //nolint:gochecknoglobals
	"badOrMissingField":      "The request is missing a required value. Check the application configuration.",
	"badRequest":             "The verification service rejected the request.",
	"notFound":               "The requested credential contract or authority was not found.",
	"unauthorized":           "The application is not authorized to call the verification service.",
	"forbidden":              "The application is not allowed to perform this operation.",
	"tokenError":             "The credential could not be validated.",
	"revokedCredential":      "The credential has been revoked.",
	"expiredCredential":      "The credential has expired.",
	"invalidDomain":          "The linked domain of the issuer could not be verified.",
	"serviceUnavailable":     "The verification service is temporarily unavailable. Please try again later.",
	"internalError":          genericUserMessage,
	"contractNotFound":       "The credential contract was not found. Check the manifest URL.",
	"authorityNotFound":      "The authority DID is not registered with the verification service.",
	"tenantNotFound":         "The tenant is not configured for verified credentials.",
	"userNotFound":           "The signed in user could not be found.",
	"faceCheckFailed":        "The face check did not match the photo on the credential.",
	"badOrMissingAuthHeader": "The application is not authorized to call the verification service.",
}

// ResponseError is a non-success response from the authority.
// The raw body is kept verbatim for operators.
type ResponseError struct {
	StatusCode   int
	Body         string
	RequestID    string
	Date         string
	Code         string
	Message      string
	InnerCode    string
	InnerMessage string
	Target       string
}

// ParseResponseError parses the authority error envelope
// {requestId, date, mscv, error{code, message, innererror{code, message, target}}}.
// Bodies that are not in that shape are kept as-is.
func ParseResponseError(statusCode int, body []byte) *ResponseError {
	e := &ResponseError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	if !gjson.ValidBytes(body) {
		return e
	}

	r := gjson.ParseBytes(body)

	e.RequestID = r.Get("requestId").String()
	e.Date = r.Get("date").String()
	e.Code = r.Get("error.code").String()
	e.Message = r.Get("error.message").String()
	e.InnerCode = r.Get("error.innererror.code").String()
	e.InnerMessage = r.Get("error.innererror.message").String()
	e.Target = r.Get("error.innererror.target").String()

	return e
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("authority responded with status %d: %s", e.StatusCode, e.Body)
}

// UserMessage returns a short message for end users derived from the error codes.
func (e *ResponseError) UserMessage() string {
	if msg, ok := userMessages[e.InnerCode]; ok {
		if e.Target != "" {
			return fmt.Sprintf("%s (%s)", msg, e.Target)
		}

		return msg
	}

	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}

	if e.InnerMessage != "" {
		return e.InnerMessage
	}

	if e.Message != "" {
		return e.Message
	}

	return genericUserMessage
}
