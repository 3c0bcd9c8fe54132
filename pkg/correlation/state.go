/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package correlation

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// EntryTTL is the lifetime of a correlation entry, regardless of its status.
	EntryTTL = 20 * time.Minute
	// ShadowTTL is the lifetime of a revocation shadow entry. It must not be shorter than EntryTTL.
	ShadowTTL = 20 * time.Minute
	// RevokedMarker is the value stored under a revoked indexed claim.
	RevokedMarker = "revoked"
	// PlaceholderToken is recorded when a callback body does not yield a correlation token.
	PlaceholderToken = "abcd"
)

// ErrDeserialization is returned when a stored or received payload is not valid JSON.
var ErrDeserialization = errors.New("deserialization error")

// Flow is the kind of operation a correlation entry belongs to.
type Flow string

const (
	FlowIssuance     Flow = "Issuance"
	FlowPresentation Flow = "Presentation"
	FlowRevocation   Flow = "Revocation"
)

// NewToken allocates a new unguessable correlation token.
func NewToken() string {
	return uuid.NewString()
}

// Transition is one entry of the append-only status log.
type Transition struct {
	Elapsed         time.Duration `json:"elapsed"`
	Status          Status        `json:"status"`
	AuthorityStatus string        `json:"authorityStatus,omitempty"`
}

// State is the record addressed by a correlation token.
type State struct {
	Token             string       `json:"requestStateId"`
	Flow              Flow         `json:"flow,omitempty"`
	Status            Status       `json:"status"`
	AuthorityStatus   string       `json:"requestStatus,omitempty"`
	Message           string       `json:"message,omitempty"`
	RawPayload        string       `json:"jsonPayload,omitempty"`
	IndexedClaimValue string       `json:"indexedClaimValue,omitempty"`
	StartedAt         time.Time    `json:"startTime"`
	Transitions       []Transition `json:"transitions,omitempty"`
}

// NewState returns a state in Created status with its initial transition recorded.
func NewState(token string, flow Flow, now time.Time) *State {
	return &State{
		Token:           token,
		Flow:            flow,
		Status:          StatusCreated,
		AuthorityStatus: RequestCreated,
		StartedAt:       now.UTC(),
		Transitions: []Transition{
			{Status: StatusCreated, AuthorityStatus: RequestCreated},
		},
	}
}

// Accepts reports whether status may still be applied. Once the entry has settled on
// Succeeded or Failed only another terminal status can replace it.
func (s *State) Accepts(status Status) bool {
	return !s.Status.Terminal() || status.Terminal()
}

// Advance records a status change. A repeat of the last recorded status and a non-terminal
// status arriving after a terminal one are both dropped and reported as false. Elapsed time
// in the log never decreases.
func (s *State) Advance(now time.Time, status Status, authorityStatus string) bool {
	if !s.Accepts(status) {
		return false
	}

	var last *Transition

	if n := len(s.Transitions); n > 0 {
		last = &s.Transitions[n-1]

		if last.Status == status && last.AuthorityStatus == authorityStatus {
			return false
		}
	}

	elapsed := now.Sub(s.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	if last != nil && elapsed < last.Elapsed {
		elapsed = last.Elapsed
	}

	s.Transitions = append(s.Transitions, Transition{
		Elapsed:         elapsed,
		Status:          status,
		AuthorityStatus: authorityStatus,
	})

	// selfie_taken is informational and leaves the machine where it was.
	if status != StatusSelfieTaken {
		s.Status = status
	}

	s.AuthorityStatus = authorityStatus

	return true
}

// ExecutionSeconds returns the time elapsed since the request was created.
func (s *State) ExecutionSeconds(now time.Time) float64 {
	return now.Sub(s.StartedAt).Seconds()
}

// ExecutionTime formats the time elapsed since the request was created as hh:mm:ss.
func (s *State) ExecutionTime(now time.Time) string {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		d = 0
	}

	d = d.Truncate(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

// Marshal encodes the state for storage.
func (s *State) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// ParseState decodes a stored state.
func ParseState(b []byte) (*State, error) {
	var st State

	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}

	return &st, nil
}
