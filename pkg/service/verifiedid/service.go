/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package verifiedid_test -source=service.go -mock_names requestBuilder=MockRequestBuilder,authorityClient=MockAuthorityClient,stateStore=MockStateStore

package verifiedid

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/authority"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/service/requestbuilder"
	"github.com/trustbloc/verifiedid-relay/pkg/storage/correlationstore"
)

var logger = log.New("verifiedid-service")

const (
	cardIDMin = 1234567890
	cardIDMax = 9976654334

	localFailureMessage = "The request could not be sent to the verification service."

	callbackAPIKeyPath = "callback.headers.api-key"
	redactedValue      = "[REDACTED]"
)

type requestBuilder interface {
	BuildIssuance(ctx context.Context, in *requestbuilder.IssuanceInput) (*requestbuilder.Issuance, error)
	BuildPresentation(ctx context.Context, in *requestbuilder.PresentationInput) (*requestbuilder.Presentation, error)
}

type authorityClient interface {
	CreateRequest(ctx context.Context, payload []byte) (*authority.CreateRequestResponse, error)
	FetchManifest(ctx context.Context, manifestURL string) (json.RawMessage, error)
}

type stateStore interface {
	Mutate(ctx context.Context, token string, fn correlationstore.MutateFunc) (*correlation.State, error)
}

// Config holds the service collaborators.
type Config struct {
	RequestBuilder requestBuilder
	Authority      authorityClient
	Store          stateStore
	ManifestURL    string
	Random         io.Reader
	Now            func() time.Time
}

// Service submits issuance and presentation requests to the authority.
type Service struct {
	builder     requestBuilder
	authority   authorityClient
	store       stateStore
	manifestURL string
	random      io.Reader
	now         func() time.Time
}

// IssueInput carries the holder's claim values for an issuance.
type IssueInput struct {
	UserAgent string
	FirstName string
	LastName  string
	Photo     string
}

// Result is returned to the browser client after a request was submitted.
type Result struct {
	Token            string          `json:"-"`
	RequestID        string          `json:"requestId,omitempty"`
	URL              string          `json:"url,omitempty"`
	Expiry           int64           `json:"expiry,omitempty"`
	PIN              string          `json:"pin,omitempty"`
	RequestPayload   json.RawMessage `json:"requestPayload,omitempty"`
	ErrorMessage     string          `json:"errorMessage,omitempty"`
	ErrorUserMessage string          `json:"errorUserMessage,omitempty"`
}

func New(cfg *Config) *Service {
	s := &Service{
		builder:     cfg.RequestBuilder,
		authority:   cfg.Authority,
		store:       cfg.Store,
		manifestURL: cfg.ManifestURL,
		random:      cfg.Random,
		now:         cfg.Now,
	}

	if s.random == nil {
		s.random = rand.Reader
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Issue builds and submits an issuance request with a generated card number and the
// holder's names as claims. The PIN, if any, is returned so the client can show it.
func (s *Service) Issue(ctx context.Context, in *IssueInput) (*Result, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	if firstName == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "firstName", errors.New("value is required"))
	}

	if lastName == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "lastName", errors.New("value is required"))
	}

	cardID, err := s.cardID()
	if err != nil {
		return nil, resterr.NewSystemError(resterr.RequestBuilderComponent, "GenerateCardID", err)
	}

	claims := map[string]string{
		"id":          cardID,
		"given_name":  firstName,
		"family_name": lastName,
	}

	if photo := strings.TrimSpace(in.Photo); photo != "" {
		claims["photo"] = photo
	}

	iss, err := s.builder.BuildIssuance(ctx, &requestbuilder.IssuanceInput{
		UserAgent: in.UserAgent,
		WithPIN:   true,
		Claims:    claims,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.Submit(ctx, iss.Token, iss.Request)
	if err != nil {
		return res, err
	}

	res.PIN = iss.PIN()

	return res, nil
}

// Present builds and submits a presentation request.
func (s *Service) Present(ctx context.Context, in *requestbuilder.PresentationInput) (*Result, error) {
	p, err := s.builder.BuildPresentation(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.Submit(ctx, p.Token, p.Request)
}

// Submit posts a built request to the authority. A non-201 answer is returned as an upstream
// error together with a result carrying the raw body and a short user message. When the request
// never reached the authority the correlation entry is recorded as failed.
func (s *Service) Submit(ctx context.Context, token string, request interface{}) (*Result, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		s.recordLocalFailure(ctx, token, err)

		return nil, resterr.NewSystemError(resterr.RequestBuilderComponent, "MarshalRequest", err)
	}

	res := &Result{
		Token:          token,
		RequestPayload: redactSecrets(payload),
	}

	resp, err := s.authority.CreateRequest(ctx, payload)
	if err != nil {
		var respErr *authority.ResponseError

		if errors.As(err, &respErr) {
			res.ErrorMessage = respErr.Body
			res.ErrorUserMessage = respErr.UserMessage()
		} else {
			res.ErrorMessage = err.Error()
			res.ErrorUserMessage = localFailureMessage
		}

		s.recordLocalFailure(ctx, token, err)

		logger.Errorc(ctx, "Authority request failed",
			logfields.WithCorrelationToken(token), log.WithError(err))

		return res, resterr.NewUpstreamError(resterr.AuthorityClientComponent, "CreateRequest", err)
	}

	res.RequestID = resp.RequestID
	res.URL = resp.URL
	res.Expiry = resp.Expiry

	logger.Infoc(ctx, "Authority request created",
		logfields.WithCorrelationToken(token), logfields.WithRequestID(resp.RequestID))

	return res, nil
}

// Manifest returns the decoded credential manifest.
func (s *Service) Manifest(ctx context.Context) (json.RawMessage, error) {
	m, err := s.authority.FetchManifest(ctx, s.manifestURL)
	if err != nil {
		if errors.Is(err, authority.ErrManifestURLMissing) {
			return nil, resterr.NewConfigurationError("manifestURL", err)
		}

		return nil, resterr.NewUpstreamError(resterr.AuthorityClientComponent, "FetchManifest", err)
	}

	return m, nil
}

// recordLocalFailure marks an entry failed unless a callback already moved it past Created.
func (s *Service) recordLocalFailure(ctx context.Context, token string, cause error) {
	_, err := s.store.Mutate(ctx, token, func(st *correlation.State) (*correlation.State, error) {
		if st == nil {
			st = correlation.NewState(token, "", s.now())
		}

		if st.Status != correlation.StatusCreated {
			return st, nil
		}

		st.Advance(s.now(), correlation.StatusFailed, "")
		st.Message = localFailureMessage
		st.RawPayload = cause.Error()

		return st, nil
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to record local failure",
			logfields.WithCorrelationToken(token), log.WithError(err))
	}
}

func (s *Service) cardID() (string, error) {
	n, err := rand.Int(s.random, big.NewInt(cardIDMax-cardIDMin))
	if err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}

	return n.Add(n, big.NewInt(cardIDMin)).String(), nil
}

// redactSecrets hides the webhook API key from the copy of the request echoed to the browser.
func redactSecrets(payload []byte) json.RawMessage {
	if !gjson.GetBytes(payload, callbackAPIKeyPath).Exists() {
		return payload
	}

	redacted, err := sjson.SetBytes(payload, callbackAPIKeyPath, redactedValue)
	if err != nil {
		return nil
	}

	return redacted
}
