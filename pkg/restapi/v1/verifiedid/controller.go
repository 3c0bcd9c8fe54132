/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifiedid_test -source=controller.go -mock_names requestService=MockRequestService,callbackService=MockCallbackService,statusResolver=MockStatusResolver,revocationService=MockRevocationService,sessionStore=MockSessionStore

package verifiedid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/pkg/restapi/resterr"
	"github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/mw"
	apiUtil "github.com/trustbloc/verifiedid-relay/pkg/restapi/v1/util"
	"github.com/trustbloc/verifiedid-relay/pkg/service/requestbuilder"
	"github.com/trustbloc/verifiedid-relay/pkg/service/revocation"
	"github.com/trustbloc/verifiedid-relay/pkg/service/status"
	vidservice "github.com/trustbloc/verifiedid-relay/pkg/service/verifiedid"
)

var logger = log.New("verifiedid-rest")

const (
	IssuanceRequestPath     = "/api/issuer/issuance-request"
	PresentationRequestPath = "/api/verifier/presentation-request"
	CallbackPath            = "/api/callback"
	StatusPath              = "/api/status"
	RevokePath              = "/api/revoke"
	ManifestPath            = "/api/manifest"

	maxCallbackBodySize = 1 << 20
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type requestService interface {
	Issue(ctx context.Context, in *vidservice.IssueInput) (*vidservice.Result, error)
	Present(ctx context.Context, in *requestbuilder.PresentationInput) (*vidservice.Result, error)
	Manifest(ctx context.Context) (json.RawMessage, error)
}

type callbackService interface {
	Handle(ctx context.Context, apiKey string, body []byte) error
}

type statusResolver interface {
	Resolve(ctx context.Context, token string) (*status.Result, error)
}

type revocationService interface {
	Revoke(ctx context.Context, token string) (*revocation.Result, error)
}

type sessionStore interface {
	Save(ctx echo.Context, token string) error
	Token(ctx echo.Context) string
}

type Config struct {
	Requests   requestService
	Callbacks  callbackService
	Status     statusResolver
	Revocation revocationService
	Session    sessionStore
	// OperatorAPIKey protects the revoke endpoint when set.
	OperatorAPIKey string
}

// Controller serves the browser, webhook and operator endpoints.
type Controller struct {
	requests   requestService
	callbacks  callbackService
	status     statusResolver
	revocation revocationService
	session    sessionStore
}

func NewController(router router, cfg *Config) *Controller {
	c := &Controller{
		requests:   cfg.Requests,
		callbacks:  cfg.Callbacks,
		status:     cfg.Status,
		revocation: cfg.Revocation,
		session:    cfg.Session,
	}

	var revokeMW []echo.MiddlewareFunc
	if cfg.OperatorAPIKey != "" {
		revokeMW = append(revokeMW, mw.APIKeyAuth(cfg.OperatorAPIKey))
	}

	router.POST(IssuanceRequestPath, c.PostIssuanceRequest)
	router.POST(PresentationRequestPath, c.PostPresentationRequest)
	router.POST(CallbackPath, c.PostCallback)
	router.GET(StatusPath, c.GetStatus)
	router.GET(RevokePath, c.GetRevoke, revokeMW...)
	router.GET(ManifestPath, c.GetManifest)

	return c
}

// PostIssuanceRequest starts an issuance.
// POST /api/issuer/issuance-request.
func (c *Controller) PostIssuanceRequest(ctx echo.Context) error {
	var body IssuanceRequestBody

	if err := apiUtil.ReadBody(ctx, &body); err != nil {
		return err
	}

	res, err := c.requests.Issue(ctx.Request().Context(), &vidservice.IssueInput{
		UserAgent: ctx.Request().UserAgent(),
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Photo:     body.Photo,
	})

	return c.writeRequestResult(ctx, res, err)
}

// PostPresentationRequest starts a presentation.
// POST /api/verifier/presentation-request.
func (c *Controller) PostPresentationRequest(ctx echo.Context) error {
	var body PresentationRequestBody

	if err := apiUtil.ReadBody(ctx, &body); err != nil {
		return err
	}

	res, err := c.requests.Present(ctx.Request().Context(), &requestbuilder.PresentationInput{
		UserAgent:       ctx.Request().UserAgent(),
		AcceptedIssuers: body.AcceptedIssuers,
		FaceCheck:       body.FaceCheck,
	})

	return c.writeRequestResult(ctx, res, err)
}

// writeRequestResult binds the correlation token to the session as soon as one exists, so a
// failed submission can still be polled.
func (c *Controller) writeRequestResult(ctx echo.Context, res *vidservice.Result, err error) error {
	if res == nil {
		return err
	}

	if res.Token != "" {
		if saveErr := c.session.Save(ctx, res.Token); saveErr != nil {
			return resterr.NewSystemError(resterr.RequestBuilderComponent, "SaveSession", saveErr)
		}
	}

	return apiUtil.WriteOutputOrError(ctx)(res, err)
}

// PostCallback receives the authority webhook.
// POST /api/callback.
func (c *Controller) PostCallback(ctx echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxCallbackBodySize))
	if err != nil {
		return resterr.NewDeserializationError(resterr.CallbackComponent, fmt.Errorf("read body: %w", err))
	}

	apiKey := ctx.Request().Header.Get(requestbuilder.APIKeyHeader)

	if err = c.callbacks.Handle(ctx.Request().Context(), apiKey, body); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// GetStatus resolves the status of the session's last request.
// GET /api/status.
func (c *Controller) GetStatus(ctx echo.Context) error {
	return apiUtil.WriteOutput(ctx)(c.status.Resolve(ctx.Request().Context(), c.session.Token(ctx)))
}

// GetRevoke revokes the credential presented in the session's last request. The answer is plain
// text for operators.
// GET /api/revoke.
func (c *Controller) GetRevoke(ctx echo.Context) error {
	res, err := c.revocation.Revoke(ctx.Request().Context(), c.session.Token(ctx))
	if res == nil {
		return err
	}

	code := http.StatusOK
	if err != nil {
		code = apiUtil.StatusCode(err)

		logger.Debugc(ctx.Request().Context(), "Revocation not completed", log.WithError(err))
	}

	return ctx.String(code, res.Message)
}

// GetManifest returns the decoded credential manifest.
// GET /api/manifest.
func (c *Controller) GetManifest(ctx echo.Context) error {
	m, err := c.requests.Manifest(ctx.Request().Context())

	return apiUtil.WriteRawOutputWithContentType(ctx)(m, echo.MIMEApplicationJSON, err)
}
