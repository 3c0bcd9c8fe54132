/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package requestbuilder

// Registration is the display information shown by the wallet.
type Registration struct {
	ClientName string `json:"clientName"`
	Purpose    string `json:"purpose,omitempty"`
}

// Callback tells the authority where to report progress.
type Callback struct {
	URL     string            `json:"url"`
	State   string            `json:"state"`
	Headers map[string]string `json:"headers"`
}

// PIN is a numeric code the holder enters in the wallet.
type PIN struct {
	Value  string `json:"value"`
	Length int    `json:"length"`
}

// IssuanceRequest is the request API payload for issuance.
type IssuanceRequest struct {
	IncludeQRCode  bool              `json:"includeQRCode"`
	Authority      string            `json:"authority"`
	Registration   Registration      `json:"registration"`
	Callback       Callback          `json:"callback"`
	Type           string            `json:"type"`
	Manifest       string            `json:"manifest"`
	PIN            *PIN              `json:"pin,omitempty"`
	Claims         map[string]string `json:"claims,omitempty"`
	ExpirationDate string            `json:"expirationDate"`
}

// PresentationRequest is the request API payload for presentation.
type PresentationRequest struct {
	IncludeQRCode        bool                  `json:"includeQRCode"`
	Authority            string                `json:"authority"`
	Registration         Registration          `json:"registration"`
	Callback             Callback              `json:"callback"`
	IncludeReceipt       bool                  `json:"includeReceipt"`
	RequestedCredentials []RequestedCredential `json:"requestedCredentials"`
}

type RequestedCredential struct {
	Type            string        `json:"type"`
	AcceptedIssuers []string      `json:"acceptedIssuers"`
	Configuration   Configuration `json:"configuration"`
}

type Configuration struct {
	Validation Validation `json:"validation"`
}

type Validation struct {
	AllowRevoked         bool       `json:"allowRevoked"`
	ValidateLinkedDomain bool       `json:"validateLinkedDomain"`
	FaceCheck            *FaceCheck `json:"faceCheck,omitempty"`
}

type FaceCheck struct {
	SourcePhotoClaimName     string `json:"sourcePhotoClaimName"`
	MatchConfidenceThreshold int    `json:"matchConfidenceThreshold"`
}
