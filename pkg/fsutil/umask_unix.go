//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// ProcessUmask swaps the umask of the running process.
type ProcessUmask struct{}

// Swap sets the process umask to mask and returns the previous value.
func (ProcessUmask) Swap(mask Umask) Umask {
	return Umask(unix.Umask(int(mask)))
}
