//go:build !darwin

package audioprobe

import (
	"errors"
	"os"
	"strings"
)

// syntheticProvider stands in for a real audio backend on platforms without
// a consent-gated capture path. Its behaviour is steerable through the
// MICGATE_PROBE_RESULT environment knob so the probe path stays exercisable
// anywhere without touching real devices.
type syntheticProvider struct {
	lookup func(string) (string, bool)
}

func defaultProvider() Provider {
	return &syntheticProvider{lookup: os.LookupEnv}
}

func (s *syntheticProvider) Name() string {
	return "synthetic"
}

func (s *syntheticProvider) mode() string {
	if s.lookup == nil {
		return ""
	}
	value, _ := s.lookup(ResultEnv)
	return strings.ToLower(strings.TrimSpace(value))
}

func (s *syntheticProvider) DefaultInputDevice() (Device, error) {
	switch s.mode() {
	case "absent":
		return Device{}, ErrNoInputDevice
	case "error":
		return Device{}, errors.New("synthetic device enumeration failure")
	}
	return Device{Name: "Synthetic Microphone", Channels: 1, SampleRate: 48000}, nil
}

func (s *syntheticProvider) OpenInputStream(device Device, onData DataFunc, onErr ErrorFunc) (Stream, error) {
	switch s.mode() {
	case "busy":
		return nil, ErrDeviceBusy
	case "error":
		return nil, errors.New("synthetic stream construction failure")
	}
	return &syntheticStream{onData: onData}, nil
}

type syntheticStream struct {
	onData  DataFunc
	started bool
}

func (s *syntheticStream) Start() error {
	s.started = true
	if s.onData != nil {
		s.onData(make([]int16, 64))
	}
	return nil
}

func (s *syntheticStream) Stop() error {
	s.started = false
	return nil
}

func (s *syntheticStream) Close() error {
	return nil
}
