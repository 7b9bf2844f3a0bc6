//go:build !darwin

package audioprobe

import (
	"errors"
	"testing"
)

type fakeLookup map[string]string

func (f fakeLookup) get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestSyntheticDefaultDevice(t *testing.T) {
	provider := &syntheticProvider{lookup: fakeLookup{}.get}
	device, err := provider.DefaultInputDevice()
	if err != nil {
		t.Fatalf("default device: %v", err)
	}
	if device.Name == "" || device.Channels != 1 {
		t.Fatalf("unexpected device %+v", device)
	}
}

func TestSyntheticFailureModes(t *testing.T) {
	cases := map[string]struct {
		mode     string
		expected error
		onOpen   bool
	}{
		"absent": {mode: "absent", expected: ErrNoInputDevice},
		"busy":   {mode: "busy", expected: ErrDeviceBusy, onOpen: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			provider := &syntheticProvider{lookup: fakeLookup{ResultEnv: tc.mode}.get}
			device, err := provider.DefaultInputDevice()
			if !tc.onOpen {
				if !errors.Is(err, tc.expected) {
					t.Fatalf("expected %v, got %v", tc.expected, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("default device: %v", err)
			}
			if _, err := provider.OpenInputStream(device, nil, nil); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestSyntheticStreamLifecycle(t *testing.T) {
	provider := &syntheticProvider{lookup: fakeLookup{}.get}
	device, err := provider.DefaultInputDevice()
	if err != nil {
		t.Fatalf("default device: %v", err)
	}

	var samples int
	stream, err := provider.OpenInputStream(device, func(in []int16) { samples += len(in) }, nil)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	if err := stream.Start(); err != nil {
		t.Fatalf("start stream: %v", err)
	}
	if samples == 0 {
		t.Fatalf("expected samples delivered to the data callback")
	}
	if err := stream.Stop(); err != nil {
		t.Fatalf("stop stream: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("close stream: %v", err)
	}
}
