package permissions

import (
	"os"
	"strings"
)

// Status is the coarse microphone authorization state reported by the OS.
// It is never cached across calls: the OS owns the state and may change it
// while the application is running.
type Status string

const (
	// StatusUnknown indicates the OS has not yet decided, or gave no signal.
	StatusUnknown Status = "unknown"
	// StatusGranted signals capture is currently permitted.
	StatusGranted Status = "granted"
	// StatusDenied indicates the user has explicitly refused access.
	StatusDenied Status = "denied"
)

// OverrideEnv names the environment variable that short-circuits the
// platform authorization read for development and tests.
const OverrideEnv = "MICGATE_MIC_PERMISSION"

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

// lookupEnv is declared for swapping in tests.
var lookupEnv = func(key string) (string, bool) {
	return os.LookupEnv(key)
}

// statusOverride reports the override status when the env knob is set.
func statusOverride(lookup LookupEnvFunc) (Status, bool) {
	if lookup == nil {
		lookup = lookupEnv
	}
	value, ok := lookup(OverrideEnv)
	if !ok {
		return StatusUnknown, false
	}
	return interpretStatusFlag(value), true
}

func interpretStatusFlag(value string) Status {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "granted", "allow", "allowed", "yes", "true":
		return StatusGranted
	case "denied", "no", "false", "blocked":
		return StatusDenied
	case "prompt", "ask", "undetermined":
		return StatusUnknown
	default:
		return StatusUnknown
	}
}
