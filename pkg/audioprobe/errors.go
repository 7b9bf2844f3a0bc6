package audioprobe

import "errors"

// ErrNoInputDevice indicates no capture device is attached at all.
var ErrNoInputDevice = errors.New("no audio input device available")

// ErrDeviceBusy indicates the input device is held by another session.
var ErrDeviceBusy = errors.New("audio input device is busy")
