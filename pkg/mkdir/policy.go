// Package mkdir creates directories the way mkdir(1) does: a Policy
// computed from the umask and an optional mode specification, a Creator
// strategy that makes missing ancestors, a walker that descends through the
// path with directory handles, and a Materializer that sequences security
// labeling around each directory.
package mkdir

import (
	"fmt"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"github.com/cperrin88/mkdirtools/pkg/modechange"
)

// Policy holds the permission values used while creating directories.
type Policy struct {
	// Mode is requested for the final directory.
	Mode uint32
	// ModeBits are the bits of Mode set explicitly by a mode specification.
	ModeBits uint32
	// AncestorUmask is active while ancestors are created. Owner write and
	// execute are never masked, so the walk can always descend.
	AncestorUmask fsutil.Umask
	// SelfUmask is active while the final directory is created.
	SelfUmask fsutil.Umask
	// Original is the umask found at resolve time.
	Original fsutil.Umask
	// Installed reports whether SelfUmask was installed as the process umask.
	Installed bool
}

// ResolvePolicy computes the Policy for a run. Without parents and without
// modeSpec the process umask is left alone and the kernel applies it.
// Otherwise the umask is read and cleared in one step, and SelfUmask is
// installed before ResolvePolicy returns. An invalid modeSpec fails with
// errutils.ErrInvalidMode before the umask is touched.
func ResolvePolicy(u fsutil.UmaskSwapper, parents bool, modeSpec string) (*Policy, error) {
	if !parents && modeSpec == "" {
		current := fsutil.CurrentUmask(u)
		return &Policy{
			Mode:          fsutil.DirModeAll,
			AncestorUmask: current,
			SelfUmask:     current,
			Original:      current,
		}, nil
	}

	var changes modechange.Changes
	if modeSpec != "" {
		var err error
		changes, err = modechange.Compile(modeSpec)
		if err != nil {
			return nil, errutils.ErrInvalidModeWithSpec(fsutil.QuoteName(modeSpec))
		}
	}

	old := u.Swap(0)
	p := &Policy{
		AncestorUmask: old &^ fsutil.Umask(fsutil.OwnerWrite|fsutil.OwnerExecute),
		Original:      old,
		Installed:     true,
	}
	if changes != nil {
		p.Mode, p.ModeBits = changes.Adjust(fsutil.DirModeAll, true, uint32(old))
		p.SelfUmask = old &^ fsutil.Umask(p.Mode)
	} else {
		p.Mode = fsutil.DirModeAll
		p.SelfUmask = old
	}
	u.Swap(p.SelfUmask)
	return p, nil
}

// Restore puts back the umask found at resolve time.
func (p *Policy) Restore(u fsutil.UmaskSwapper) {
	if p.Installed {
		u.Swap(p.Original)
		p.Installed = false
	}
}

// AncestorsTraversable reports whether ancestors created under this policy
// end up readable by their owner.
func (p *Policy) AncestorsTraversable() bool {
	return uint32(p.AncestorUmask)&fsutil.OwnerRead == 0
}

// explicitPermissions reports whether the mode specification set any rwx
// bit, in which case the umask must not have the last word on them.
func (p *Policy) explicitPermissions() bool {
	return p.Mode&p.ModeBits&fsutil.PermBits != 0
}

// keepsSpecialBits reports whether the new directory needs no setuid,
// setgid or sticky adjustment after creation.
func (p *Policy) keepsSpecialBits() bool {
	return (p.ModeBits&(fsutil.SetUID|fsutil.SetGID))|(p.Mode&fsutil.Sticky) == 0
}

// createMode is the mode handed to mkdir for the final directory. Group
// and others get no access before special bits are settled.
func (p *Policy) createMode() uint32 {
	if p.keepsSpecialBits() {
		return p.Mode
	}
	return p.Mode &^ (fsutil.GroupAll | fsutil.OtherAll)
}

func octal(mode uint32) string {
	return fmt.Sprintf("%04o", mode)
}
