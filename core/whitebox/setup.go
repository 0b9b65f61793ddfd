package whitebox

import (
	"context"

	"github.com/anoideaopen/whitebox/core/telemetry"
	"github.com/anoideaopen/whitebox/internal/config"
)

// Setup installs the global tracer provider described by the environment,
// see internal/config. Call it once, usually from TestMain, and call the
// returned function when the tests are done to flush pending spans.
func Setup(ctx context.Context) (telemetry.ShutdownFunc, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	return telemetry.InstallTraceProvider(ctx, cfg)
}
