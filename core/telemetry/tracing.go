package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of whitebox spans.
const TracerName = "github.com/anoideaopen/whitebox"

// TracingHandler starts spans and extracts remote span contexts.
type TracingHandler struct {
	Tracer      trace.Tracer
	Propagators propagation.TextMapPropagator
}

// NewTracingHandler returns a handler using the global tracer provider and
// propagators.
func NewTracingHandler() *TracingHandler {
	return &TracingHandler{
		Tracer:      otel.Tracer(TracerName),
		Propagators: otel.GetTextMapPropagator(),
	}
}

// StartNewSpan starts a span named spanName as a child of ctx.
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// ContextFromEnv returns ctx with the remote span context found in the
// environment, or ctx unchanged when there is none.
func (th *TracingHandler) ContextFromEnv(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	carrier := CarrierFromEnv()
	if len(carrier) == 0 {
		return ctx
	}

	return th.Propagators.Extract(ctx, carrier)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}
