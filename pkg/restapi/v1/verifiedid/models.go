/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiedid

// IssuanceRequestBody is the optional body of POST /api/issuer/issuance-request.
type IssuanceRequestBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Photo     string `json:"photo,omitempty"`
}

// PresentationRequestBody is the optional body of POST /api/verifier/presentation-request.
type PresentationRequestBody struct {
	AcceptedIssuers []string `json:"acceptedIssuers,omitempty"`
	FaceCheck       bool     `json:"faceCheck,omitempty"`
}
