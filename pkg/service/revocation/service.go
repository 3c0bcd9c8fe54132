/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package revocation_test -source=service.go -mock_names authorityClient=MockAuthorityClient,stateStore=MockStateStore

package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/authority"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics/noop"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/storage"
	"github.com/trustbloc/verifiedid-relay/pkg/storage/correlationstore"
)

var logger = log.New("revocation")

const (
	MessageOK                 = "OK"
	MessageSessionNotFound    = "Session object not found."
	MessageStateNotFound      = "Request state not found."
	MessageClaimNotFound      = "Indexed claim value not found."
	MessageCredentialNotFound = "Value object not found."
	messageAlreadyRevoked     = "The credential status is '%s', no need to revoke."

	// RevocationCompleted is the status recorded on the presentation entry after a revoke.
	RevocationCompleted = "revocation_completed"

	credentialStatusValid = "valid"
)

type authorityClient interface {
	FindCredentials(ctx context.Context, encodedHash string) ([]authority.Credential, error)
	RevokeCredential(ctx context.Context, credentialID string) error
}

type stateStore interface {
	Get(ctx context.Context, token string) (*correlation.State, error)
	Mutate(ctx context.Context, token string, fn correlationstore.MutateFunc) (*correlation.State, error)
	MarkRevoked(ctx context.Context, claim string) error
}

type Config struct {
	// Contract salts the index claim hash. It is the contract identifier the credentials were issued under.
	Contract  string
	Authority authorityClient
	Store     stateStore
	Metrics   metrics.Metrics
	Now       func() time.Time
}

// Result is the operator-facing outcome of a revoke call.
type Result struct {
	Message string
	Revoked bool
}

type Service struct {
	contract  string
	authority authorityClient
	store     stateStore
	metrics   metrics.Metrics
	now       func() time.Time
}

func New(cfg *Config) *Service {
	s := &Service{
		contract:  cfg.Contract,
		authority: cfg.Authority,
		store:     cfg.Store,
		metrics:   cfg.Metrics,
		now:       cfg.Now,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// IndexClaimHash returns the URL-encoded admin API search value for claim.
func IndexClaimHash(contract, claim string) string {
	sum := sha256.Sum256([]byte(contract + claim))

	return url.QueryEscape(base64.StdEncoding.EncodeToString(sum[:]))
}

// Revoke revokes the credential presented in the flow identified by token. The result message is
// always set. A returned error classifies the failure; upstream errors carry the authority body verbatim.
func (s *Service) Revoke(ctx context.Context, token string) (*Result, error) {
	if token == "" {
		return &Result{Message: MessageSessionNotFound},
			resterr.NewNotFoundError(resterr.RevocationComponent, errors.New(MessageSessionNotFound))
	}

	ctx = log.With(ctx, logfields.WithCorrelationToken(token))

	st, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return &Result{Message: MessageStateNotFound},
				resterr.NewNotFoundError(resterr.RevocationComponent, errors.New(MessageStateNotFound))
		}

		return failure(resterr.NewSystemError(resterr.CorrelationStoreComponent, "Get", err))
	}

	if st.IndexedClaimValue == "" {
		return &Result{Message: MessageClaimNotFound},
			resterr.NewNotFoundError(resterr.RevocationComponent, errors.New(MessageClaimNotFound))
	}

	claim := st.IndexedClaimValue
	hash := IndexClaimHash(s.contract, claim)

	ctx = log.With(ctx, logfields.WithClaimHash(hash))

	credentials, err := s.authority.FindCredentials(ctx, hash)
	if err != nil {
		return upstreamFailure(ctx, "FindCredentials", err)
	}

	if len(credentials) == 0 {
		return &Result{Message: MessageCredentialNotFound},
			resterr.NewNotFoundError(resterr.RevocationComponent, errors.New(MessageCredentialNotFound))
	}

	credential := credentials[0]

	if credential.Status != credentialStatusValid {
		logger.Infoc(ctx, "Credential already invalidated",
			logfields.WithCredentialID(credential.ID), logfields.WithStatus(credential.Status))

		return &Result{Message: fmt.Sprintf(messageAlreadyRevoked, credential.Status)}, nil
	}

	if err = s.authority.RevokeCredential(ctx, credential.ID); err != nil {
		return upstreamFailure(ctx, "RevokeCredential", err)
	}

	s.metrics.CredentialRevoked()

	logger.Infoc(ctx, "Credential revoked", logfields.WithCredentialID(credential.ID))

	// The authority index lags behind the revoke call. The shadow entry covers presentations until it catches up.
	if err = s.store.MarkRevoked(ctx, claim); err != nil {
		return failure(resterr.NewSystemError(resterr.CorrelationStoreComponent, "MarkRevoked", err))
	}

	s.recordRevocation(ctx, token)

	return &Result{Message: MessageOK, Revoked: true}, nil
}

func (s *Service) recordRevocation(ctx context.Context, token string) {
	now := s.now()

	_, err := s.store.Mutate(ctx, token, func(st *correlation.State) (*correlation.State, error) {
		if st == nil {
			return nil, storage.ErrDataNotFound
		}

		st.Flow = correlation.FlowRevocation
		st.Advance(now, correlation.StatusSucceeded, RevocationCompleted)

		return st, nil
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to record revocation on the correlation entry", log.WithError(err))
	}
}

func upstreamFailure(ctx context.Context, op string, err error) (*Result, error) {
	logger.Errorc(ctx, "Authority call failed", logfields.WithOperation(op), log.WithError(err))

	var respErr *authority.ResponseError
	if errors.As(err, &respErr) {
		return &Result{Message: respErr.Body},
			resterr.NewUpstreamError(resterr.AuthorityClientComponent, op, err)
	}

	return &Result{Message: "Error: " + err.Error()},
		resterr.NewUpstreamError(resterr.AuthorityClientComponent, op, err)
}

func failure(err error) (*Result, error) {
	return &Result{Message: "Error: " + err.Error()}, err
}
