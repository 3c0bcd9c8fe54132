/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package callback_test -source=service.go -mock_names stateStore=MockStateStore

package callback

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics/noop"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/storage/correlationstore"
)

var logger = log.New("callback")

const (
	// RevokedMessage is recorded when a verified presentation is overridden by the shadow check.
	RevokedMessage = "Certificate validation failed"
	// RevokedPayload replaces the authority payload of an overridden presentation.
	RevokedPayload = `{"requestStatus":"presentation_error","error":{"code":"tokenError",` +
		`"message":"The presented verifiable credential with jti is revoked."}}`

	unauthorizedMessage   = "Api-key wrong or missing"
	shadowCheckFailedText = "Revocation status of the presented credential could not be checked"
	indexedClaimName      = "id"
)

type stateStore interface {
	Mutate(ctx context.Context, token string, fn correlationstore.MutateFunc) (*correlation.State, error)
	IsRevoked(ctx context.Context, claim string) (bool, error)
}

// Config holds the callback handler settings.
type Config struct {
	APIKey string
	// RevocationCredentialType is the credential type subject to the revocation shadow check.
	RevocationCredentialType string
	Store                    stateStore
	Metrics                  metrics.Metrics
	Now                      func() time.Time
}

// Service processes authority webhooks.
type Service struct {
	apiKey         []byte
	revocationType string
	store          stateStore
	metrics        metrics.Metrics
	now            func() time.Time
}

func New(cfg *Config) *Service {
	s := &Service{
		apiKey:         []byte(cfg.APIKey),
		revocationType: cfg.RevocationCredentialType,
		store:          cfg.Store,
		metrics:        cfg.Metrics,
		now:            cfg.Now,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// outcome is the change a callback applies to a correlation entry.
type outcome struct {
	status          correlation.Status
	authorityStatus string
	message         string
	payload         string
	indexedClaim    string
}

// Handle authenticates and applies a webhook. It returns an error only for a bad API key,
// an unparseable body or an unknown status; each of these is still recorded as a failed entry.
func (s *Service) Handle(ctx context.Context, apiKey string, body []byte) error {
	ev, parseErr := parseEvent(body)

	token := ev.State
	if token == "" {
		token = correlation.PlaceholderToken
	}

	ctx = log.With(ctx, logfields.WithCorrelationToken(token))

	if !s.authorized(apiKey) {
		s.record(ctx, token, &outcome{ //nolint:errcheck
			status:  correlation.StatusFailed,
			message: unauthorizedMessage,
			payload: unauthorizedMessage,
		})

		s.metrics.CallbackProcessed(metrics.OutcomeUnauthorized)

		return resterr.NewUnauthorizedError(errors.New(unauthorizedMessage))
	}

	if parseErr != nil {
		s.record(ctx, token, &outcome{ //nolint:errcheck
			status:  correlation.StatusFailed,
			message: parseErr.Error(),
			payload: string(body),
		})

		s.metrics.CallbackProcessed(metrics.OutcomeError)

		return resterr.NewDeserializationError(resterr.CallbackComponent, parseErr)
	}

	status, ok := correlation.ParseAuthorityStatus(ev.RequestStatus)
	if !ok {
		s.record(ctx, token, &outcome{ //nolint:errcheck
			status:          correlation.StatusFailed,
			authorityStatus: ev.RequestStatus,
			message:         fmt.Sprintf("Unknown request status '%s'", ev.RequestStatus),
			payload:         string(body),
		})

		s.metrics.CallbackProcessed(metrics.OutcomeUnknownStatus)

		return resterr.NewUnknownStatusError(ev.RequestStatus)
	}

	o := &outcome{
		status:          status,
		authorityStatus: ev.RequestStatus,
		payload:         string(body),
	}

	metricOutcome := metrics.OutcomeAccepted

	if claim, found := s.indexedClaim(ev); found {
		o.indexedClaim = claim

		revoked, err := s.store.IsRevoked(ctx, claim)

		switch {
		case err != nil:
			logger.Errorc(ctx, "Shadow check failed", log.WithError(err))

			s.override(o, shadowCheckFailedText)

			metricOutcome = metrics.OutcomeOverridden
		case revoked:
			logger.Infoc(ctx, "Verified presentation of a revoked credential overridden")

			s.override(o, RevokedMessage)

			metricOutcome = metrics.OutcomeOverridden
		}
	}

	if err := s.record(ctx, token, o); err != nil {
		s.metrics.CallbackProcessed(metrics.OutcomeError)

		return resterr.NewSystemError(resterr.CorrelationStoreComponent, "Mutate", err)
	}

	s.metrics.CallbackProcessed(metricOutcome)

	logger.Debugc(ctx, "Callback processed",
		logfields.WithRequestID(ev.RequestID), logfields.WithAuthorityStatus(o.authorityStatus))

	return nil
}

func (s *Service) authorized(apiKey string) bool {
	if len(s.apiKey) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(apiKey), s.apiKey) == 1
}

func (s *Service) override(o *outcome, message string) {
	o.status = correlation.StatusFailed
	o.authorityStatus = correlation.PresentationError
	o.message = message
	o.payload = RevokedPayload
}

// indexedClaim returns the identifying claim of a verified presentation that carries exactly
// one credential of the revocation-demo type.
func (s *Service) indexedClaim(ev *Event) (string, bool) {
	if s.revocationType == "" || ev.RequestStatus != correlation.PresentationVerified {
		return "", false
	}

	if len(ev.VerifiedCredentialsData) != 1 {
		return "", false
	}

	vc := ev.VerifiedCredentialsData[0]

	if !lo.Contains(vc.Type, s.revocationType) {
		return "", false
	}

	claim, ok := vc.Claims[indexedClaimName].(string)
	if !ok || claim == "" {
		return "", false
	}

	return claim, true
}

// record applies o to the entry of token. A missing entry is created with a blank flow.
func (s *Service) record(ctx context.Context, token string, o *outcome) error {
	now := s.now()

	st, err := s.store.Mutate(ctx, token, func(st *correlation.State) (*correlation.State, error) {
		if st == nil {
			st = &correlation.State{
				Token:     token,
				Status:    correlation.StatusCreated,
				StartedAt: now.UTC(),
			}
		}

		if !st.Accepts(o.status) {
			logger.Infoc(ctx, "Late callback ignored, entry already settled",
				logfields.WithStatus(st.Status.String()), logfields.WithAuthorityStatus(o.authorityStatus))

			return st, nil
		}

		st.Advance(now, o.status, o.authorityStatus)
		st.Message = o.message
		st.RawPayload = o.payload

		if o.indexedClaim != "" {
			st.IndexedClaimValue = o.indexedClaim
		}

		return st, nil
	})
	if err != nil {
		logger.Errorc(ctx, "Failed to record callback", log.WithError(err))

		return err
	}

	logger.Debugc(ctx, "Correlation entry updated",
		logfields.WithFlow(string(st.Flow)), logfields.WithStatus(st.Status.String()))

	return nil
}

// parseEvent decodes the body. When the body is not valid JSON the token and status are
// recovered on a best-effort basis so the failure can still be recorded.
func parseEvent(body []byte) (*Event, error) {
	var ev Event

	err := json.Unmarshal(body, &ev)
	if err == nil {
		return &ev, nil
	}

	partial := &Event{
		State:         gjson.GetBytes(body, "state").String(),
		RequestStatus: gjson.GetBytes(body, "requestStatus").String(),
		RequestID:     gjson.GetBytes(body, "requestId").String(),
	}

	return partial, fmt.Errorf("%w: %w", correlation.ErrDeserialization, err)
}
