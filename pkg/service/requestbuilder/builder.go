/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination builder_mocks_test.go -self_package mocks -package requestbuilder_test -source=builder.go -mock_names stateStore=MockStateStore

package requestbuilder

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
)

var logger = log.New("request-builder")

const (
	// APIKeyHeader carries the shared secret the authority sends back on every callback.
	APIKeyHeader = "api-key"

	maxPINLength             = 9
	expirationDays           = 60
	faceCheckPhotoClaim      = "photo"
	faceCheckMatchConfidence = 70
)

type stateStore interface {
	Create(ctx context.Context, st *correlation.State) error
}

// Config is the static request policy.
type Config struct {
	AuthorityDID         string
	CredentialType       string
	ManifestURL          string
	CallbackURL          string
	APIKey               string
	ClientName           string
	Purpose              string
	PINLength            int
	IncludeQRCode        bool
	IncludeReceipt       bool
	AllowRevoked         bool
	ValidateLinkedDomain bool
}

// Validate reports the first missing or invalid setting.
func (c *Config) Validate() error {
	required := []lo.Tuple2[string, string]{
		lo.T2("authority", c.AuthorityDID),
		lo.T2("credentialType", c.CredentialType),
		lo.T2("callbackURL", c.CallbackURL),
		lo.T2("apiKey", c.APIKey),
	}

	for _, r := range required {
		if strings.TrimSpace(r.B) == "" {
			return resterr.NewConfigurationError(r.A, errors.New("value is required"))
		}
	}

	if c.PINLength < 0 || c.PINLength > maxPINLength {
		return resterr.NewConfigurationError("pinLength",
			fmt.Errorf("must be between 0 and %d", maxPINLength))
	}

	return nil
}

// IsMobile reports whether the user agent belongs to a phone, where the wallet runs
// on the same device and a PIN adds nothing.
func IsMobile(userAgent string) bool {
	return strings.Contains(userAgent, "Android") || strings.Contains(userAgent, "iPhone")
}

// PINRequired reports whether an issuance request gets a PIN.
func PINRequired(cfg *Config, userAgent string, requested bool) bool {
	return requested && cfg.PINLength > 0 && !IsMobile(userAgent)
}

// FaceCheckRequested reports whether a presentation request asks for a face check.
func FaceCheckRequested(in *PresentationInput) bool {
	return in != nil && in.FaceCheck
}

// IssuanceInput is the per-request context of an issuance.
type IssuanceInput struct {
	UserAgent string
	WithPIN   bool
	Claims    map[string]string
}

// PresentationInput is the per-request context of a presentation.
type PresentationInput struct {
	UserAgent       string
	AcceptedIssuers []string
	FaceCheck       bool
}

// Issuance is a built issuance request with its correlation token.
type Issuance struct {
	Token   string
	Request *IssuanceRequest
}

// PIN returns the generated PIN value, empty when none was generated.
func (i *Issuance) PIN() string {
	if i.Request.PIN == nil {
		return ""
	}

	return i.Request.PIN.Value
}

// Presentation is a built presentation request with its correlation token.
type Presentation struct {
	Token   string
	Request *PresentationRequest
}

type Opt func(b *Builder)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Opt {
	return func(b *Builder) {
		b.now = now
	}
}

// WithRandom overrides the source used to generate PINs.
func WithRandom(r io.Reader) Opt {
	return func(b *Builder) {
		b.random = r
	}
}

// Builder creates authority requests and registers their correlation entries.
type Builder struct {
	cfg    Config
	store  stateStore
	now    func() time.Time
	random io.Reader
}

// New validates cfg and returns a Builder.
func New(cfg *Config, store stateStore, opts ...Opt) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:    *cfg,
		store:  store,
		now:    time.Now,
		random: rand.Reader,
	}

	for _, f := range opts {
		f(b)
	}

	return b, nil
}

// BuildIssuance builds an issuance request and stores its Created entry.
func (b *Builder) BuildIssuance(ctx context.Context, in *IssuanceInput) (*Issuance, error) {
	now := b.now()
	token := correlation.NewToken()

	req := &IssuanceRequest{
		IncludeQRCode:  b.cfg.IncludeQRCode,
		Authority:      b.cfg.AuthorityDID,
		Registration:   b.registration(),
		Callback:       b.callback(token),
		Type:           b.cfg.CredentialType,
		Manifest:       b.cfg.ManifestURL,
		Claims:         in.Claims,
		ExpirationDate: ExpirationDate(now),
	}

	if PINRequired(&b.cfg, in.UserAgent, in.WithPIN) {
		pin, err := GeneratePIN(b.random, b.cfg.PINLength)
		if err != nil {
			return nil, resterr.NewSystemError(resterr.RequestBuilderComponent, "GeneratePIN", err)
		}

		req.PIN = &PIN{Value: pin, Length: len(pin)}
	}

	if err := b.register(ctx, token, correlation.FlowIssuance, now); err != nil {
		return nil, err
	}

	return &Issuance{Token: token, Request: req}, nil
}

// BuildPresentation builds a presentation request and stores its Created entry.
func (b *Builder) BuildPresentation(ctx context.Context, in *PresentationInput) (*Presentation, error) {
	now := b.now()
	token := correlation.NewToken()

	issuers := lo.Compact(in.AcceptedIssuers)
	if len(issuers) == 0 {
		issuers = []string{b.cfg.AuthorityDID}
	}

	req := &PresentationRequest{
		IncludeQRCode:  b.cfg.IncludeQRCode,
		Authority:      b.cfg.AuthorityDID,
		Registration:   b.registration(),
		Callback:       b.callback(token),
		IncludeReceipt: b.cfg.IncludeReceipt,
		RequestedCredentials: []RequestedCredential{{
			Type:            b.cfg.CredentialType,
			AcceptedIssuers: issuers,
			Configuration: Configuration{
				Validation: Validation{
					AllowRevoked:         b.cfg.AllowRevoked,
					ValidateLinkedDomain: b.cfg.ValidateLinkedDomain,
				},
			},
		}},
	}

	if FaceCheckRequested(in) {
		// receipts are not supported together with face check
		req.IncludeReceipt = false
		req.RequestedCredentials[0].Configuration.Validation.FaceCheck = &FaceCheck{
			SourcePhotoClaimName:     faceCheckPhotoClaim,
			MatchConfidenceThreshold: faceCheckMatchConfidence,
		}
	}

	if err := b.register(ctx, token, correlation.FlowPresentation, now); err != nil {
		return nil, err
	}

	return &Presentation{Token: token, Request: req}, nil
}

func (b *Builder) register(ctx context.Context, token string, flow correlation.Flow, now time.Time) error {
	if err := b.store.Create(ctx, correlation.NewState(token, flow, now)); err != nil {
		return resterr.NewSystemError(resterr.CorrelationStoreComponent, "Create", err)
	}

	logger.Debugc(ctx, "Correlation entry created",
		logfields.WithCorrelationToken(token), logfields.WithFlow(string(flow)))

	return nil
}

func (b *Builder) registration() Registration {
	// an empty purpose is omitted from the request
	return Registration{
		ClientName: b.cfg.ClientName,
		Purpose:    strings.TrimSpace(b.cfg.Purpose),
	}
}

func (b *Builder) callback(token string) Callback {
	return Callback{
		URL:     b.cfg.CallbackURL,
		State:   token,
		Headers: map[string]string{APIKeyHeader: b.cfg.APIKey},
	}
}

// GeneratePIN returns a uniformly random decimal PIN of exactly length digits, zero padded.
// The all-zero and all-nine values are never produced.
func GeneratePIN(random io.Reader, length int) (string, error) {
	if length <= 0 || length > maxPINLength {
		return "", fmt.Errorf("invalid pin length %d", length)
	}

	if random == nil {
		random = rand.Reader
	}

	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil) //nolint:mnd
	upper.Sub(upper, big.NewInt(2))                                            //nolint:mnd

	n, err := rand.Int(random, upper)
	if err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n.Int64()+1), nil
}

// ExpirationDate returns the end of the day 60 days after now, in the authority's format.
func ExpirationDate(now time.Time) string {
	return now.UTC().AddDate(0, 0, expirationDays).Format("2006-01-02") + "T23:59:59.000Z"
}
