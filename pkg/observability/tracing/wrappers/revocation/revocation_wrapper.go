/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package revocation . Service

package revocation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/pkg/service/revocation"
)

type Service interface {
	Revoke(ctx context.Context, token string) (*revocation.Result, error)
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Revoke(ctx context.Context, token string) (*revocation.Result, error) {
	ctx, span := w.tracer.Start(ctx, "revocation.Revoke")
	defer span.End()

	span.SetAttributes(attribute.String("request_state_id", token))

	res, err := w.svc.Revoke(ctx, token)
	if res != nil {
		span.SetAttributes(attribute.Bool("revoked", res.Revoked))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err
}
