package permissions

import (
	"errors"

	"github.com/quietdesk/micgate/pkg/audioprobe"
)

// Environment summarises microphone gate availability for diagnostics.
type Environment struct {
	Provider   string
	Available  bool
	Permission string
	Device     string
	Message    string
	Guidance   string
}

// DetectEnvironment reports the probe backend, permission state, and the
// default input device for the host platform.
func DetectEnvironment(oracle Oracle, provider audioprobe.Provider) Environment {
	if provider == nil {
		provider = audioprobe.DefaultProvider()
	}
	if oracle == nil {
		oracle = NewOracle(Options{Provider: provider})
	}

	env := Environment{
		Provider:   provider.Name(),
		Permission: string(oracle.CheckStatus()),
		Available:  true,
	}

	device, err := provider.DefaultInputDevice()
	switch {
	case err == nil:
		env.Device = device.Name
	case errors.Is(err, audioprobe.ErrNoInputDevice):
		env.Available = false
		env.Message = "no audio input device detected"
	default:
		env.Message = err.Error()
	}

	switch Status(env.Permission) {
	case StatusDenied:
		env.Available = false
		if env.Message == "" {
			env.Message = "microphone permission denied"
		}
		env.Guidance = DeniedMessage
	case StatusUnknown:
		if env.Message == "" {
			env.Message = "microphone permission not yet decided; a probe will prompt"
		}
	}

	return env
}
