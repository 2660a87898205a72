//go:build unix && !linux

package mkdir

import "golang.org/x/sys/unix"

const searchOnly = unix.O_RDONLY
