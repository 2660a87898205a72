//go:build unix

package mkdir

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// Dir is an open directory that relative creation calls are made against.
// It stands in for the working directory, so the process's own working
// directory is never changed.
type Dir struct {
	fd    int
	owned bool
}

// CurrentDir is the process working directory.
func CurrentDir() Dir {
	return Dir{fd: unix.AT_FDCWD}
}

func openRoot() (Dir, error) {
	fd, err := unix.Open("/", unix.O_DIRECTORY|unix.O_CLOEXEC|searchOnly, 0)
	if err != nil {
		return Dir{}, err
	}
	return Dir{fd: fd, owned: true}, nil
}

// Path returns a path naming name inside d that is valid for path based
// APIs such as the label service.
func (d Dir) Path(name string) string {
	if d.fd == unix.AT_FDCWD {
		return name
	}
	return "/proc/self/fd/" + strconv.Itoa(d.fd) + "/" + name
}

// Mkdir creates name inside d.
func (d Dir) Mkdir(name string, mode uint32) error {
	return unix.Mkdirat(d.fd, name, mode)
}

// Open opens the directory name inside d. flags are added to O_DIRECTORY
// and O_CLOEXEC.
func (d Dir) Open(name string, flags int) (Dir, error) {
	fd, err := unix.Openat(d.fd, name, unix.O_DIRECTORY|unix.O_CLOEXEC|flags, 0)
	if err != nil {
		return Dir{}, err
	}
	return Dir{fd: fd, owned: true}, nil
}

// Stat stats name inside d, following symlinks.
func (d Dir) Stat(name string) (unix.Stat_t, error) {
	var st unix.Stat_t
	err := unix.Fstatat(d.fd, name, &st, 0)
	return st, err
}

// Lstat stats name inside d without following a trailing symlink.
func (d Dir) Lstat(name string) (unix.Stat_t, error) {
	var st unix.Stat_t
	err := unix.Fstatat(d.fd, name, &st, unix.AT_SYMLINK_NOFOLLOW)
	return st, err
}

// Chmod changes the mode of name inside d.
func (d Dir) Chmod(name string, mode uint32) error {
	return unix.Fchmodat(d.fd, name, mode, 0)
}

// Close releases d unless it is the working directory.
func (d Dir) Close() error {
	if !d.owned {
		return nil
	}
	return unix.Close(d.fd)
}
