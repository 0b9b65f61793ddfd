package telemetry

import (
	"os"

	"go.opentelemetry.io/otel/propagation"
)

// Environment variables carrying a W3C trace context into a test run.
const (
	EnvTraceParent = "TRACEPARENT"
	EnvTraceState  = "TRACESTATE"
)

// CarrierFromEnv packs the trace context set in the environment, if any,
// into a carrier.
func CarrierFromEnv() propagation.MapCarrier {
	carrier := propagation.MapCarrier{}
	if v := os.Getenv(EnvTraceParent); v != "" {
		carrier.Set("traceparent", v)
	}
	if v := os.Getenv(EnvTraceState); v != "" {
		carrier.Set("tracestate", v)
	}

	return carrier
}
