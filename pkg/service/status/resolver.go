/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination resolver_mocks_test.go -self_package mocks -package status_test -source=resolver.go -mock_names stateStore=MockStateStore

package status

import (
	"context"
	"errors"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/storage"
)

var logger = log.New("status-resolver")

type stateStore interface {
	Get(ctx context.Context, token string) (*correlation.State, error)
}

// Result is the client-facing view of a correlation entry.
type Result struct {
	RequestStateID string                   `json:"requestStateId"`
	RequestStatus  string                   `json:"requestStatus"`
	Status         correlation.Status       `json:"status,omitempty"`
	Message        string                   `json:"message"`
	Detail         string                   `json:"detail,omitempty"`
	MessageVersion string                   `json:"messageVersion"`
	Flow           correlation.Flow         `json:"flow,omitempty"`
	Payload        string                   `json:"payload,omitempty"`
	StartedAt      *time.Time               `json:"startedAt,omitempty"`
	ExecutionTime  string                   `json:"executionTime,omitempty"`
	Transitions    []correlation.Transition `json:"transitions,omitempty"`
	// Found is false when no entry exists for the token.
	Found bool `json:"-"`
}

// Resolver answers client status polls.
type Resolver struct {
	store stateStore
	now   func() time.Time
}

func NewResolver(store stateStore, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}

	return &Resolver{
		store: store,
		now:   now,
	}
}

// Resolve looks up the entry of token. A missing token, a missing entry and a corrupt entry are
// all reported in the result. The error is reserved for a store that cannot be reached.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Result, error) {
	if token == "" {
		return errorResult("", StateIDNotFound), nil
	}

	ctx = log.With(ctx, logfields.WithCorrelationToken(token))

	st, err := r.store.Get(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDataNotFound):
			return errorResult(token, StateObjectNotFound), nil
		case errors.Is(err, correlation.ErrDeserialization):
			logger.Warnc(ctx, "Stored state cannot be decoded", log.WithError(err))

			return errorResult("", StateCannotDeserialize+err.Error()), nil
		default:
			return nil, resterr.NewSystemError(resterr.CorrelationStoreComponent, "Get", err)
		}
	}

	return r.resolve(st), nil
}

func (r *Resolver) resolve(st *correlation.State) *Result {
	now := r.now()
	startedAt := st.StartedAt

	res := &Result{
		RequestStateID: st.Token,
		RequestStatus:  st.AuthorityStatus,
		Status:         st.Status,
		Detail:         st.Message,
		MessageVersion: MessageTableVersion,
		Flow:           st.Flow,
		Payload:        st.RawPayload,
		StartedAt:      &startedAt,
		ExecutionTime:  st.ExecutionTime(now),
		Transitions:    st.Transitions,
		Found:          true,
	}

	msg, ok := message(st.Flow, st.Status)
	if !ok {
		res.RequestStatus = RequestStatusInvalid
		res.Message = InvalidStatusMessage

		return res
	}

	res.Message = msg

	return res
}

func errorResult(token, msg string) *Result {
	return &Result{
		RequestStateID: token,
		RequestStatus:  RequestStatusError,
		Message:        msg,
		MessageVersion: MessageTableVersion,
	}
}
