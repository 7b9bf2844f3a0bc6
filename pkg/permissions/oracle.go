package permissions

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/quietdesk/micgate/pkg/audioprobe"
)

// DefaultDwell is how long a probe stream stays open: long enough for the
// OS permission subsystem to register the access attempt and surface its
// dialog, short enough to be imperceptible.
const DefaultDwell = 100 * time.Millisecond

// Oracle answers whether microphone capture is currently permitted,
// possibly by attempting a real capture session.
type Oracle interface {
	// CheckStatus reports the authorization state without side effects.
	CheckStatus() Status

	// Probe opens, briefly holds, and releases a real input stream. This is
	// the only operation that can change permission state: an undecided
	// permission only prompts when a real access attempt is made, so a pure
	// status query would report unknown forever.
	Probe(ctx context.Context) ProbeResult
}

// FailureReason classifies why a probe did not succeed.
type FailureReason string

const (
	// FailureDenied means the OS explicitly refused access. Recoverable
	// only by a settings change plus an application restart.
	FailureDenied FailureReason = "denied"
	// FailureDeviceAbsent means no capture device exists to test against.
	FailureDeviceAbsent FailureReason = "device_absent"
	// FailureDeviceBusy means another session holds the device. Transient,
	// deliberately not treated as denial.
	FailureDeviceBusy FailureReason = "device_busy"
	// FailureUnexpected covers any other construction or start error.
	FailureUnexpected FailureReason = "unexpected"
)

// ProbeResult is the outcome of one capture probe attempt.
type ProbeResult struct {
	OK     bool
	Reason FailureReason
	Err    error
	Device string
}

// Options configures oracle construction.
type Options struct {
	// Provider supplies device resolution and stream construction.
	// Defaults to the platform backend.
	Provider audioprobe.Provider
	// Dwell overrides how long the probe stream stays open.
	Dwell time.Duration
	// Logger receives probe diagnostics. Stream errors are logged here and
	// never propagated.
	Logger *slog.Logger
	// Lookup resolves the permission override env knob.
	Lookup LookupEnvFunc
	// Sleeper is swapped in tests to avoid real dwell waits.
	Sleeper func(context.Context, time.Duration) error
}

// NewOracle returns the oracle for the host platform: a consent-gated
// oracle on macOS, a pass-through oracle everywhere else.
func NewOracle(opts Options) Oracle {
	return newPlatformOracle(opts)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
