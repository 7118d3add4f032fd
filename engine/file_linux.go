//go:build linux

package engine

import (
	"os"

	"golang.org/x/sys/unix"
)

// openOutput opens (creating if absent) the destination in write-append
// mode. Direct mode adds O_DIRECT, bypassing the page cache; the writer
// pads every submission to the sector size so the kernel accepts them.
func openOutput(path string, direct bool) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if direct {
		flags |= unix.O_DIRECT
	}

	return os.OpenFile(path, flags, 0o644)
}
