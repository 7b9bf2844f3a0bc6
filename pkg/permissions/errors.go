package permissions

import (
	"errors"
	"strings"
)

// ErrPermissionDenied indicates macOS refused microphone access for this app.
var ErrPermissionDenied = errors.New("macOS microphone permission required for audio capture")

type permissionError struct {
	message string
}

func (e *permissionError) Error() string {
	return e.message
}

func (e *permissionError) Is(target error) bool {
	return target == ErrPermissionDenied
}

func newPermissionError(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		trimmed = ErrPermissionDenied.Error()
	}
	return &permissionError{message: trimmed}
}
