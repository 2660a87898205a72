package seclabel

import (
	"os"
	"strings"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"golang.org/x/sys/unix"
)

const (
	smackfsPath      = "/sys/fs/smackfs"
	smackSelfAttr    = "/proc/thread-self/attr/current"
	smackMaxLabelLen = 255
)

var smackSelfPath = smackSelfAttr

type smackModule struct{}

func (smackModule) Kind() Kind { return SMACK }

// OpenDefault is not supported: SMACK has no default label database.
func (smackModule) OpenDefault() (Labeler, error) {
	return nil, errutils.Wrap(unix.ENOTSUP, "SMACK has no default labels")
}

// SetCreateContext sets the SMACK label of the calling thread, which SMACK
// gives to every file the thread creates.
func (smackModule) SetCreateContext(ctx string) error {
	if err := validSmackLabel(ctx); err != nil {
		return err
	}
	return os.WriteFile(smackSelfPath, []byte(ctx), 0)
}

func validSmackLabel(label string) error {
	if label == "" || len(label) > smackMaxLabelLen || label[0] == '-' {
		return errutils.Wrapf(unix.EINVAL, "invalid SMACK label %q", label)
	}
	if strings.ContainsAny(label, "/\"'\\ \t\n") {
		return errutils.Wrapf(unix.EINVAL, "invalid SMACK label %q", label)
	}
	return nil
}
