/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import "github.com/trustbloc/verifiedid-relay/pkg/correlation"

// MessageTableVersion identifies the wording of client-facing messages. Bump it when any text changes.
const MessageTableVersion = "v1"

const (
	// StateIDNotFound is returned when the caller has no correlation token in its session.
	StateIDNotFound = "State ID not found in the session."
	// StateObjectNotFound is returned for an unknown or expired correlation token.
	StateObjectNotFound = "The request is still being processed or has expired."
	// StateCannotDeserialize prefixes the decode error of a corrupt entry.
	StateCannotDeserialize = "The request state could not be read: "
	// InvalidStatusMessage is returned for a status outside the modelled set.
	InvalidStatusMessage = "The request has an invalid status."

	// RequestStatusError is the requestStatus of every lookup that did not yield an entry.
	RequestStatusError = "error"
	// RequestStatusInvalid replaces an authority status the resolver cannot interpret.
	RequestStatusInvalid = "invalid_request_status"
)

type messageKey struct {
	flow   correlation.Flow
	status correlation.Status
}

var messagesV1 = map[messageKey]string{ //nolint:gochecknoglobals
	{"", correlation.StatusCreated}:   "The request was created. Waiting for the wallet to pick it up.",
	{"", correlation.StatusRetrieved}: "The QR code was scanned. Waiting for the wallet to complete the request.",
	{"", correlation.StatusSucceeded}: "The request completed successfully.",
	{"", correlation.StatusFailed}:    "The request failed.",

	{correlation.FlowIssuance, correlation.StatusSucceeded}: "The credential was issued to the wallet.",
	{correlation.FlowIssuance, correlation.StatusFailed}:    "The credential could not be issued.",

	{correlation.FlowPresentation, correlation.StatusSucceeded}: "The presented credential was verified.",
	{correlation.FlowPresentation, correlation.StatusFailed}:    "The presented credential could not be verified.",

	{correlation.FlowRevocation, correlation.StatusSucceeded}: "The credential was revoked.",
	{correlation.FlowRevocation, correlation.StatusFailed}:    "The credential could not be revoked.",
}

// message looks up the flow specific wording first and falls back to the generic one.
func message(flow correlation.Flow, status correlation.Status) (string, bool) {
	if msg, ok := messagesV1[messageKey{flow, status}]; ok {
		return msg, true
	}

	msg, ok := messagesV1[messageKey{"", status}]

	return msg, ok
}
