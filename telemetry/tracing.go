// Package telemetry wraps the OpenTelemetry tracer used around calls into
// the validation engine. The engine itself never imports this package;
// tracing is strictly an ambient concern of the caller.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies this module's spans in any backend.
const TracerName = "github.com/staked-chain/txvalidation"

// NewProvider builds a trace provider with the given sampling ratio. No
// OTLP exporter is wired: this module has no collector endpoint in scope,
// so spans are recorded in-process only (for an in-process SpanProcessor
// the caller registers, or for future export once one is configured).
func NewProvider(sampleRatio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
}

// StartVerifySpan starts a span around one verify call, tagged with the
// transaction kind ("transfer", "bonded_deposit", "unbonding",
// "unbonded_withdraw").
func StartVerifySpan(ctx context.Context, kind string) (context.Context, trace.Span) {
	tracer := otel.Tracer(TracerName)
	return tracer.Start(ctx, "validation.Verify", trace.WithAttributes(attribute.String("tx.kind", kind)))
}

// EndSpan records the call's outcome on span and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
