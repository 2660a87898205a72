package seclabel

import (
	"os"
	"path/filepath"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/opencontainers/selinux/go-selinux"
	"golang.org/x/sys/unix"
)

var selinuxEnabled = selinux.GetEnabled

type selinuxModule struct{}

func (selinuxModule) Kind() Kind { return SELinux }

// OpenDefault computes default labels from the policy's type transition
// rules for the calling process.
func (selinuxModule) OpenDefault() (Labeler, error) {
	if !selinuxEnabled() {
		return nil, errutils.Wrap(unix.ENOTSUP, errutils.ErrLabelingUnsupported.Error())
	}
	process, err := selinux.CurrentLabel()
	if err != nil {
		return nil, errutils.Wrap(err, "failed to read process context")
	}
	return &selinuxLabeler{process: process}, nil
}

// SetCreateContext sets the fscreate attribute of the calling thread. The
// caller must stay locked to its OS thread.
func (selinuxModule) SetCreateContext(ctx string) error {
	return selinux.SetFSCreateLabel(ctx)
}

type selinuxLabeler struct {
	process string
}

// securityClass maps file type bits to the SELinux object class.
func securityClass(mode os.FileMode) string {
	switch {
	case mode.IsDir():
		return "dir"
	case mode&os.ModeSymlink != 0:
		return "lnk_file"
	case mode&os.ModeNamedPipe != 0:
		return "fifo_file"
	case mode&os.ModeSocket != 0:
		return "sock_file"
	case mode&os.ModeCharDevice != 0:
		return "chr_file"
	case mode&os.ModeDevice != 0:
		return "blk_file"
	default:
		return "file"
	}
}

func (l *selinuxLabeler) defaultContext(path string, mode os.FileMode) (string, error) {
	parent, err := selinux.FileLabel(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	return selinux.ComputeCreateContext(l.process, parent, securityClass(mode))
}

func (l *selinuxLabeler) SetDefaultContext(path string, mode os.FileMode) error {
	ctx, err := l.defaultContext(path, mode)
	if err != nil {
		return err
	}
	return selinux.SetFSCreateLabel(ctx)
}

func (l *selinuxLabeler) RestoreContext(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	want, err := l.defaultContext(path, fi.Mode())
	if err != nil {
		return err
	}
	if have, err := selinux.LfileLabel(path); err == nil && have == want {
		return nil
	}
	return selinux.LsetFileLabel(path, want)
}

func (l *selinuxLabeler) Close() error {
	return selinux.SetFSCreateLabel("")
}
