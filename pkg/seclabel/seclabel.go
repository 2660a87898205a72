// Package seclabel is the security label service used when creating
// directories. It hides which mandatory access control module is active
// (SELinux, SMACK or none) behind the Module and Labeler interfaces, so
// callers can label unconditionally and let the no-op implementations absorb
// hosts without label support.
package seclabel

import (
	"errors"
	"os"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"golang.org/x/sys/unix"
)

// Kind identifies a security module.
type Kind int

const (
	None Kind = iota
	SELinux
	SMACK
)

func (k Kind) String() string {
	switch k {
	case SELinux:
		return "SELinux"
	case SMACK:
		return "SMACK"
	default:
		return "none"
	}
}

// IsIgnorable reports whether a labeling failure only means that labels are
// not supported for this file, in which case it is not worth a warning.
func IsIgnorable(err error) bool {
	return errors.Is(err, unix.ENOTSUP) ||
		errors.Is(err, unix.EOPNOTSUPP) ||
		errors.Is(err, unix.ENODATA)
}

// Detect returns the security module active on this host. SMACK takes
// precedence over SELinux.
func Detect() Module {
	if smackEnabled() {
		return smackModule{}
	}
	if selinuxEnabled() {
		return selinuxModule{}
	}
	return NoneModule{}
}

// Nop is a Labeler that does nothing.
type Nop struct{}

func (Nop) SetDefaultContext(string, os.FileMode) error { return nil }
func (Nop) RestoreContext(string) error                 { return nil }
func (Nop) Close() error                                { return nil }

// NoneModule stands for a host without a security module.
type NoneModule struct{}

func (NoneModule) Kind() Kind { return None }

func (NoneModule) OpenDefault() (Labeler, error) {
	return nil, errutils.Wrap(unix.ENOTSUP, errutils.ErrLabelingUnsupported.Error())
}

func (NoneModule) SetCreateContext(string) error {
	return errutils.Wrap(unix.ENOTSUP, errutils.ErrLabelingUnsupported.Error())
}
