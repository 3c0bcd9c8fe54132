/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package correlation

// Status is the machine status of a correlation entry.
type Status string

const (
	StatusCreated     Status = "created"
	StatusRetrieved   Status = "retrieved"
	StatusSucceeded   Status = "succeeded"
	StatusFailed      Status = "failed"
	StatusSelfieTaken Status = "selfie_taken"
	// StatusInvalid is the catch-all for a value outside the modelled set.
	StatusInvalid Status = "invalid"
)

// Request status strings reported by the authority.
const (
	RequestCreated       = "request_created"
	RequestRetrieved     = "request_retrieved"
	IssuanceSuccessful   = "issuance_successful"
	IssuanceError        = "issuance_error"
	PresentationVerified = "presentation_verified"
	PresentationError    = "presentation_error"
	SelfieTaken          = "selfie_taken"
)

var authorityStatuses = map[string]Status{ //nolint:gochecknoglobals
	RequestCreated:       StatusCreated,
	RequestRetrieved:     StatusRetrieved,
	IssuanceSuccessful:   StatusSucceeded,
	IssuanceError:        StatusFailed,
	PresentationVerified: StatusSucceeded,
	PresentationError:    StatusFailed,
	SelfieTaken:          StatusSelfieTaken,
}

// ParseAuthorityStatus maps an authority request status to a machine status.
// The second return value is false when the string is not a known issuance,
// presentation or selfie status.
func ParseAuthorityStatus(raw string) (Status, bool) {
	st, ok := authorityStatuses[raw]
	if !ok {
		return StatusInvalid, false
	}

	return st, true
}

// Known reports whether s is one of the modelled statuses.
func (s Status) Known() bool {
	switch s {
	case StatusCreated, StatusRetrieved, StatusSucceeded, StatusFailed, StatusSelfieTaken, StatusInvalid:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are expected.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalText keeps unknown stored values readable by folding them into StatusInvalid.
func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Known() {
		v = StatusInvalid
	}

	*s = v

	return nil
}
