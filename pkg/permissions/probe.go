package permissions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quietdesk/micgate/pkg/audioprobe"
)

// prober implements the capture probe shared by both oracle variants:
// resolve the default input device, open a stream bound to a discarding
// data callback, hold it for the dwell window, then release it on every
// exit path so the device is never left open.
type prober struct {
	provider audioprobe.Provider
	dwell    time.Duration
	logger   *slog.Logger
	sleep    func(context.Context, time.Duration) error
}

func newProber(opts Options) prober {
	provider := opts.Provider
	if provider == nil {
		provider = audioprobe.DefaultProvider()
	}
	dwell := opts.Dwell
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	sleep := opts.Sleeper
	if sleep == nil {
		sleep = defaultSleeper
	}
	return prober{provider: provider, dwell: dwell, logger: logger, sleep: sleep}
}

// run executes one probe attempt. classify maps provider errors that are
// neither "absent" nor "busy" onto a failure reason; the gated oracle uses
// it to consult the authorization state for denial.
func (p prober) run(ctx context.Context, classify func(error) FailureReason) ProbeResult {
	if ctx == nil {
		ctx = context.Background()
	}

	device, err := p.provider.DefaultInputDevice()
	if err != nil {
		if errors.Is(err, audioprobe.ErrNoInputDevice) {
			return ProbeResult{Reason: FailureDeviceAbsent, Err: err}
		}
		return p.failure("", err, classify)
	}

	stream, err := p.provider.OpenInputStream(device, func([]int16) {}, func(streamErr error) {
		p.logger.Warn("probe stream error", "device", device.Name, "error", streamErr)
	})
	if err != nil {
		return p.failure(device.Name, err, classify)
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			p.logger.Warn("release probe stream", "device", device.Name, "error", closeErr)
		}
	}()

	if err := stream.Start(); err != nil {
		return p.failure(device.Name, err, classify)
	}
	defer func() {
		if stopErr := stream.Stop(); stopErr != nil {
			p.logger.Warn("stop probe stream", "device", device.Name, "error", stopErr)
		}
	}()

	if err := p.sleep(ctx, p.dwell); err != nil {
		return ProbeResult{Reason: FailureUnexpected, Err: err, Device: device.Name}
	}

	return ProbeResult{OK: true, Device: device.Name}
}

func (p prober) failure(device string, err error, classify func(error) FailureReason) ProbeResult {
	reason := classifyProbeError(err, classify)
	if reason == FailureDenied {
		err = newPermissionError(err.Error())
	}
	return ProbeResult{Reason: reason, Err: err, Device: device}
}

func classifyProbeError(err error, classify func(error) FailureReason) FailureReason {
	switch {
	case errors.Is(err, audioprobe.ErrNoInputDevice):
		return FailureDeviceAbsent
	case errors.Is(err, audioprobe.ErrDeviceBusy):
		return FailureDeviceBusy
	}
	if classify != nil {
		return classify(err)
	}
	return FailureUnexpected
}

func defaultSleeper(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
