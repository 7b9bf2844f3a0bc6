// Package audioprobe exposes the minimal audio-input surface the permission
// gate needs: default device resolution and short-lived capture streams. It
// uses PortAudio on macOS and a deterministic synthetic backend elsewhere.
package audioprobe

// ResultEnv steers the synthetic backend for development and tests
// (ok, absent, busy, error).
const ResultEnv = "MICGATE_PROBE_RESULT"

// Device identifies an audio input device and its default configuration.
type Device struct {
	Name       string
	Channels   int
	SampleRate float64
}

// DataFunc receives captured samples. The permission probe discards them.
type DataFunc func(samples []int16)

// ErrorFunc receives asynchronous stream errors.
type ErrorFunc func(err error)

// Stream is an input stream held open only long enough to confirm liveness.
type Stream interface {
	Start() error
	Stop() error
	Close() error
}

// Provider resolves input devices and constructs capture streams.
type Provider interface {
	Name() string
	DefaultInputDevice() (Device, error)
	OpenInputStream(device Device, onData DataFunc, onErr ErrorFunc) (Stream, error)
}

// DefaultProvider returns the capture backend for the host platform.
func DefaultProvider() Provider {
	return defaultProvider()
}
