/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verifiedid . Service

package verifiedid

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/pkg/service/requestbuilder"
	"github.com/trustbloc/verifiedid-relay/pkg/service/verifiedid"
)

type Service interface {
	Issue(ctx context.Context, in *verifiedid.IssueInput) (*verifiedid.Result, error)
	Present(ctx context.Context, in *requestbuilder.PresentationInput) (*verifiedid.Result, error)
	Manifest(ctx context.Context) (json.RawMessage, error)
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Issue(ctx context.Context, in *verifiedid.IssueInput) (*verifiedid.Result, error) {
	ctx, span := w.tracer.Start(ctx, "verifiedid.Issue")
	defer span.End()

	span.SetAttributes(
		attribute.Bool("mobile", requestbuilder.IsMobile(in.UserAgent)),
		attribute.Bool("photo", in.Photo != ""),
	)

	res, err := w.svc.Issue(ctx, in)
	setResult(span, res, err)

	return res, err
}

func (w *Wrapper) Present(ctx context.Context, in *requestbuilder.PresentationInput) (*verifiedid.Result, error) {
	ctx, span := w.tracer.Start(ctx, "verifiedid.Present")
	defer span.End()

	span.SetAttributes(
		attribute.Bool("mobile", requestbuilder.IsMobile(in.UserAgent)),
		attribute.Bool("face_check", in.FaceCheck),
		attribute.StringSlice("accepted_issuers", in.AcceptedIssuers),
	)

	res, err := w.svc.Present(ctx, in)
	setResult(span, res, err)

	return res, err
}

func (w *Wrapper) Manifest(ctx context.Context) (json.RawMessage, error) {
	ctx, span := w.tracer.Start(ctx, "verifiedid.Manifest")
	defer span.End()

	m, err := w.svc.Manifest(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return m, err
}

func setResult(span trace.Span, res *verifiedid.Result, err error) {
	if res != nil {
		span.SetAttributes(
			attribute.String("request_state_id", res.Token),
			attribute.String("request_id", res.RequestID),
		)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
