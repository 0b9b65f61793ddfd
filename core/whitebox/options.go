package whitebox

import (
	"context"

	"github.com/anoideaopen/whitebox/core/telemetry"
	"github.com/sirupsen/logrus"
)

// Option configures a Session.
type Option func(s *Session)

// WithLogger replaces the environment configured logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithTracer replaces the handler built on the global tracer provider.
func WithTracer(th *telemetry.TracingHandler) Option {
	return func(s *Session) {
		s.tracing = th
	}
}

// WithContext sets the parent context of the session spans. Without it the
// parent is taken from TRACEPARENT, when set.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}
