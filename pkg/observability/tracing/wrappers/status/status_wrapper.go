/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package status . Service

package status

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/pkg/service/status"
)

type Service interface {
	Resolve(ctx context.Context, token string) (*status.Result, error)
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Resolve(ctx context.Context, token string) (*status.Result, error) {
	ctx, span := w.tracer.Start(ctx, "status.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("request_state_id", token))

	res, err := w.svc.Resolve(ctx, token)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("request_status", res.RequestStatus),
		attribute.Bool("found", res.Found),
	)

	return res, nil
}
