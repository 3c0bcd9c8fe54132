/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package callback . Service

package callback

import (
	"context"
	"strconv"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/pkg/observability/tracing/attributeutil"
)

type Service interface {
	Handle(ctx context.Context, apiKey string, body []byte) error
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

// Handle traces the webhook. Holder claims and the receipt are kept out of the span.
func (w *Wrapper) Handle(ctx context.Context, apiKey string, body []byte) error {
	ctx, span := w.tracer.Start(ctx, "callback.Handle")
	defer span.End()

	span.SetAttributes(attributeutil.RawJSON("event", body, eventRedactions(body)...))

	err := w.svc.Handle(ctx, apiKey, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func eventRedactions(body []byte) []attributeutil.Opt {
	opts := []attributeutil.Opt{attributeutil.WithRedacted("receipt")}

	n := int(gjson.GetBytes(body, "verifiedCredentialsData.#").Int())
	for i := 0; i < n; i++ {
		opts = append(opts, attributeutil.WithRedacted("verifiedCredentialsData."+strconv.Itoa(i)+".claims"))
	}

	return opts
}
