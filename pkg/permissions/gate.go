package permissions

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultWarmupDelay is how long the warm-up waits before its probe, so the
// rest of application startup settles first and the consent dialog never
// appears over a half-drawn window.
const DefaultWarmupDelay = 500 * time.Millisecond

// Remediation messages surfaced to the caller verbatim. The denial message
// names the exact setting and the restart requirement: permission changes
// for this device class do not reliably take effect without one.
const (
	DeniedMessage = "Microphone access is denied. Enable it for this app under System Settings > Privacy & Security > Microphone, then restart the application."

	absentMessage  = "No microphone was found. Connect an audio input device and try again."
	busyMessage    = "The microphone is currently in use by another application. Try again in a moment."
	unknownMessage = "Microphone access could not be confirmed. If a permission dialog appeared, grant access and try again; otherwise check System Settings > Privacy & Security > Microphone."
)

// Outcome tells the recording-start path whether capture may proceed.
// When OK is false, Message carries the remediation text to display.
type Outcome struct {
	OK      bool
	Reason  FailureReason
	Message string
}

// GateOptions configures gate construction.
type GateOptions struct {
	Oracle Oracle
	Logger *slog.Logger
	// WarmupDelay overrides how long WarmUp defers before probing.
	WarmupDelay time.Duration
	// Notify, when set, raises a desktop alert if the warm-up probe
	// concludes the permission is denied.
	Notify func(title, body string) error
	// Sleeper is swapped in tests to avoid real warm-up waits.
	Sleeper func(context.Context, time.Duration) error
}

// Gate decides whether a recording attempt may proceed and sequences when
// the oracle's probe fires. It keeps no permission state of its own: every
// decision re-derives status from the oracle, because the OS may grant or
// revoke access out-of-band at any time.
type Gate struct {
	oracle      Oracle
	logger      *slog.Logger
	warmupDelay time.Duration
	notify      func(title, body string) error
	sleep       func(context.Context, time.Duration) error

	// probeMu serializes probes per process: two concurrent liveness
	// streams buy nothing and can spuriously report a busy device.
	probeMu  sync.Mutex
	warmOnce sync.Once
}

// NewGate validates options and returns a gate instance.
func NewGate(opts GateOptions) (*Gate, error) {
	if opts.Oracle == nil {
		return nil, errors.New("oracle must be provided")
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	delay := opts.WarmupDelay
	if delay <= 0 {
		delay = DefaultWarmupDelay
	}
	sleep := opts.Sleeper
	if sleep == nil {
		sleep = defaultSleeper
	}
	return &Gate{
		oracle:      opts.Oracle,
		logger:      logger,
		warmupDelay: delay,
		notify:      opts.Notify,
		sleep:       sleep,
	}, nil
}

// EnsureGranted reports whether capture may proceed right now. When the
// status already reads granted no stream is opened and the call adds no
// latency; otherwise one probe runs to force the OS to reveal (or decide)
// the true state. Safe and idempotent on every recording attempt.
func (g *Gate) EnsureGranted(ctx context.Context) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	status := g.oracle.CheckStatus()
	if status == StatusGranted {
		return Outcome{OK: true}
	}

	g.logger.Info("microphone permission unresolved, probing", "status", string(status))
	result := g.runProbe(ctx)
	status = g.oracle.CheckStatus()
	if result.OK || status == StatusGranted {
		return Outcome{OK: true}
	}

	outcome := failureOutcome(result, status)
	g.logger.Warn("microphone gate blocked recording",
		"reason", string(outcome.Reason),
		"status", string(status),
		"error", result.Err)
	return outcome
}

// WarmUp schedules a one-shot background probe that resolves consent at a
// calm moment instead of at the first recording attempt. It returns
// immediately and only the first call has any effect; the probe's outcome
// unblocks nothing, since a later EnsureGranted re-derives the true state.
func (g *Gate) WarmUp() {
	g.warmOnce.Do(func() {
		go g.warm(context.Background())
	})
}

func (g *Gate) warm(ctx context.Context) {
	if err := g.sleep(ctx, g.warmupDelay); err != nil {
		return
	}

	status := g.oracle.CheckStatus()
	if status == StatusGranted {
		g.logger.Info("microphone permission already granted")
		return
	}

	g.logger.Info("warming up microphone permission", "status", string(status))
	result := g.runProbe(ctx)
	if result.OK {
		g.logger.Info("microphone warm-up probe succeeded", "device", result.Device)
		return
	}

	g.logger.Warn("microphone warm-up probe failed",
		"reason", string(result.Reason),
		"error", result.Err)

	if g.notify == nil {
		return
	}
	if result.Reason == FailureDenied || g.oracle.CheckStatus() == StatusDenied {
		if err := g.notify("Microphone access needed", DeniedMessage); err != nil {
			g.logger.Warn("notify denied permission", "error", err)
		}
	}
}

func (g *Gate) runProbe(ctx context.Context) ProbeResult {
	g.probeMu.Lock()
	defer g.probeMu.Unlock()
	return g.oracle.Probe(ctx)
}

// failureOutcome maps a failed probe onto the message shown to the user.
// Busy probes rank first: a device held by a concurrent legitimate session
// must never be reported as denial.
func failureOutcome(result ProbeResult, status Status) Outcome {
	switch {
	case result.Reason == FailureDeviceBusy:
		return Outcome{Reason: FailureDeviceBusy, Message: busyMessage}
	case result.Reason == FailureDeviceAbsent:
		return Outcome{Reason: FailureDeviceAbsent, Message: absentMessage}
	case result.Reason == FailureDenied || status == StatusDenied:
		return Outcome{Reason: FailureDenied, Message: DeniedMessage}
	default:
		return Outcome{Reason: FailureUnexpected, Message: unknownMessage}
	}
}
