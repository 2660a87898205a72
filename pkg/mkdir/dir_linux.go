package mkdir

import "golang.org/x/sys/unix"

// searchOnly opens a directory for use as a lookup base only; it needs
// search but not read permission.
const searchOnly = unix.O_PATH
