// Package permissions gates audio recording on the operating system's
// microphone consent state. It pairs a platform oracle (an authoritative
// status read plus a side-effecting capture probe that surfaces the macOS
// consent dialog) with a gate that sequences when the probe fires: a deferred
// warm-up at application startup and a synchronous check on every
// recording-start path.
package permissions
