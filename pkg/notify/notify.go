// Package notify raises small desktop alerts for permission outcomes.
package notify

import "github.com/gen2brain/beeep"

// Alert shows a desktop notification. Failures are returned, never fatal:
// a missing notification daemon must not break the permission flow.
func Alert(title, body string) error {
	return beeep.Alert(title, body, "")
}
