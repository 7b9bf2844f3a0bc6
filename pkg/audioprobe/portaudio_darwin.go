//go:build darwin

package audioprobe

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// portaudioProvider opens real input streams through PortAudio. The library
// is initialised once per process and left initialised: repeated
// Initialize/Terminate cycles can drop Core Audio device state mid-session.
type portaudioProvider struct {
	initOnce sync.Once
	initErr  error
}

func defaultProvider() Provider {
	return &portaudioProvider{}
}

func (p *portaudioProvider) Name() string {
	return "portaudio"
}

func (p *portaudioProvider) ensureInit() error {
	p.initOnce.Do(func() {
		p.initErr = portaudio.Initialize()
	})
	return p.initErr
}

func (p *portaudioProvider) DefaultInputDevice() (Device, error) {
	if err := p.ensureInit(); err != nil {
		return Device{}, fmt.Errorf("initialise portaudio: %w", err)
	}
	info, err := portaudio.DefaultInputDevice()
	if err != nil {
		return Device{}, classifyPortAudio(err)
	}
	if info == nil || info.MaxInputChannels < 1 {
		return Device{}, ErrNoInputDevice
	}
	return Device{
		Name:       info.Name,
		Channels:   1,
		SampleRate: info.DefaultSampleRate,
	}, nil
}

func (p *portaudioProvider) OpenInputStream(device Device, onData DataFunc, onErr ErrorFunc) (Stream, error) {
	if err := p.ensureInit(); err != nil {
		return nil, fmt.Errorf("initialise portaudio: %w", err)
	}
	if onData == nil {
		onData = func([]int16) {}
	}
	rate := device.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	channels := device.Channels
	if channels <= 0 {
		channels = 1
	}
	stream, err := portaudio.OpenDefaultStream(channels, 0, rate, 0, func(in []int16) {
		onData(in)
	})
	if err != nil {
		return nil, classifyPortAudio(err)
	}
	return &portaudioStream{stream: stream, onErr: onErr}, nil
}

type portaudioStream struct {
	stream *portaudio.Stream
	onErr  ErrorFunc
}

func (s *portaudioStream) Start() error {
	if err := s.stream.Start(); err != nil {
		return classifyPortAudio(err)
	}
	return nil
}

func (s *portaudioStream) Stop() error {
	if err := s.stream.Stop(); err != nil {
		classified := classifyPortAudio(err)
		if s.onErr != nil {
			s.onErr(classified)
		}
		return classified
	}
	return nil
}

func (s *portaudioStream) Close() error {
	return s.stream.Close()
}

// classifyPortAudio maps PortAudio error codes onto the provider sentinels
// so callers can tell "no hardware" from "in use".
func classifyPortAudio(err error) error {
	var paErr portaudio.Error
	if !errors.As(err, &paErr) {
		return err
	}
	switch paErr {
	case portaudio.DeviceUnavailable:
		return fmt.Errorf("%w: %v", ErrDeviceBusy, err)
	case portaudio.InvalidDevice, portaudio.HostApiNotFound, portaudio.InvalidHostApi:
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	return err
}
