/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package callback

import "encoding/json"

// Event is the webhook body posted by the authority.
type Event struct {
	RequestID               string               `json:"requestId"`
	State                   string               `json:"state"`
	RequestStatus           string               `json:"requestStatus"`
	Subject                 string               `json:"subject,omitempty"`
	VerifiedCredentialsData []VerifiedCredential `json:"verifiedCredentialsData,omitempty"`
	Receipt                 json.RawMessage      `json:"receipt,omitempty"`
	Error                   *EventError          `json:"error,omitempty"`
}

type VerifiedCredential struct {
	Issuer         string                 `json:"issuer,omitempty"`
	Type           []string               `json:"type"`
	Claims         map[string]interface{} `json:"claims"`
	ExpirationDate string                 `json:"expirationDate,omitempty"`
	IssuanceDate   string                 `json:"issuanceDate,omitempty"`
}

type EventError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
