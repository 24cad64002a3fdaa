package cleanup

import "errors"

var (
	// ErrUpstream wraps failures of the bundle store or the Wistia API.
	ErrUpstream = errors.New("upstream failure")
	// ErrConfirmation wraps failures of the confirmation prompt itself.
	ErrConfirmation = errors.New("failed to confirm with user")
)
