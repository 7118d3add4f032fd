//go:build !linux

package engine

import "os"

// openOutput opens (creating if absent) the destination in write-append
// mode. This platform has no O_DIRECT equivalent: direct mode still pads
// submissions to the sector size, only the page-cache bypass is
// unavailable.
func openOutput(path string, _ bool) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
