//go:build darwin

package permissions

/*
#cgo CFLAGS: -x objective-c -fobjc-arc -fmodules
#cgo LDFLAGS: -framework Foundation -framework AVFoundation
#import <AVFoundation/AVFoundation.h>

// 0 = not determined, 1 = granted, 2 = denied (restricted folds into
// denied: the user cannot fix it inside this app either way).
static int micAuthorizationStatus(void) {
	AVAuthorizationStatus status = [AVCaptureDevice authorizationStatusForMediaType:AVMediaTypeAudio];
	switch (status) {
	case AVAuthorizationStatusAuthorized:
		return 1;
	case AVAuthorizationStatusDenied:
	case AVAuthorizationStatusRestricted:
		return 2;
	case AVAuthorizationStatusNotDetermined:
	default:
		return 0;
	}
}
*/
import "C"

import "context"

// gatedOracle reads the TCC authorization state for the microphone and
// probes through a real capture stream so macOS surfaces its consent
// dialog when the state is still undecided.
type gatedOracle struct {
	prober
	lookup LookupEnvFunc
}

func newPlatformOracle(opts Options) Oracle {
	return &gatedOracle{prober: newProber(opts), lookup: opts.Lookup}
}

func (o *gatedOracle) CheckStatus() Status {
	if status, ok := statusOverride(o.lookup); ok {
		return status
	}
	switch C.micAuthorizationStatus() {
	case 1:
		return StatusGranted
	case 2:
		return StatusDenied
	default:
		return StatusUnknown
	}
}

func (o *gatedOracle) Probe(ctx context.Context) ProbeResult {
	return o.run(ctx, func(error) FailureReason {
		if o.CheckStatus() == StatusDenied {
			return FailureDenied
		}
		return FailureUnexpected
	})
}
