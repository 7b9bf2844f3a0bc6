//go:build !darwin

package permissions

import "context"

// passThroughOracle serves platforms without an OS-level consent gate:
// status is always granted unless overridden for development or tests.
type passThroughOracle struct {
	prober
	lookup LookupEnvFunc
}

func newPlatformOracle(opts Options) Oracle {
	return &passThroughOracle{prober: newProber(opts), lookup: opts.Lookup}
}

func (o *passThroughOracle) CheckStatus() Status {
	if status, ok := statusOverride(o.lookup); ok {
		return status
	}
	return StatusGranted
}

func (o *passThroughOracle) Probe(ctx context.Context) ProbeResult {
	return o.run(ctx, func(error) FailureReason {
		if o.CheckStatus() == StatusDenied {
			return FailureDenied
		}
		return FailureUnexpected
	})
}
