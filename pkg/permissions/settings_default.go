//go:build !darwin

package permissions

import "errors"

// OpenSystemSettings is only meaningful where an OS consent gate exists.
func OpenSystemSettings() error {
	return errors.New("system permission settings shortcut is only available on macOS")
}
