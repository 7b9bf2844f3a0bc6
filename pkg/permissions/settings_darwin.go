//go:build darwin

package permissions

import "os/exec"

// privacyPaneURL deep-links System Settings at the microphone privacy list.
const privacyPaneURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Microphone"

// OpenSystemSettings opens the privacy pane so the user can flip the
// toggle named in the remediation message.
func OpenSystemSettings() error {
	return exec.Command("open", privacyPaneURL).Start()
}
