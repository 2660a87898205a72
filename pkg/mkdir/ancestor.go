//go:build unix

package mkdir

import (
	"os"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"github.com/cperrin88/mkdirtools/pkg/seclabel"
	"golang.org/x/sys/unix"
)

// Outcome is the result of creating one ancestor.
type Outcome int

const (
	// Failed means the ancestor was not created; the error says why.
	Failed Outcome = iota
	// Traversable means the ancestor was created readable by its owner.
	Traversable
	// NotTraversable means the ancestor was created but its owner cannot
	// read it. It is still searchable, so the walk may go on without
	// reading it.
	NotTraversable
)

func (o Outcome) String() string {
	switch o {
	case Traversable:
		return "traversable"
	case NotTraversable:
		return "not traversable"
	default:
		return "failed"
	}
}

// Creator is the strategy used for the segments of a path. It is chosen
// once per run.
type Creator interface {
	// CreatesAncestors reports whether missing ancestors are made. When it
	// is false the path is created as a single segment.
	CreatesAncestors() bool
	// MakeAncestor creates component inside parent. dir is the path up to
	// and including component, used for messages.
	MakeAncestor(parent Dir, dir, component string) (Outcome, error)
}

// SingleSegment creates only the final directory of a path.
type SingleSegment struct{}

func (SingleSegment) CreatesAncestors() bool { return false }

// MakeAncestor is never called, since CreatesAncestors is false.
func (SingleSegment) MakeAncestor(Dir, string, string) (Outcome, error) {
	return Failed, unix.ENOENT
}

// AncestorCreator makes missing ancestors with the policy's ancestor umask
// and an optional default security label.
type AncestorCreator struct {
	Umask     fsutil.UmaskSwapper
	Policy    *Policy
	Labeler   seclabel.Labeler
	Announcer Announcer
}

func (c *AncestorCreator) CreatesAncestors() bool { return true }

func (c *AncestorCreator) MakeAncestor(parent Dir, dir, component string) (Outcome, error) {
	if err := c.Labeler.SetDefaultContext(parent.Path(component), os.ModeDir); err != nil && !seclabel.IsIgnorable(err) {
		logger.Warn(errutils.ErrSetDefaultContext.Error()+" for "+fsutil.QuoteName(dir), logger.Fields{logger.ErrorKey: err})
	}

	err := fsutil.WithUmask(c.Umask, c.Policy.SelfUmask, c.Policy.AncestorUmask, func() error {
		return parent.Mkdir(component, fsutil.DirModeAll)
	})
	if err != nil {
		return Failed, err
	}

	outcome := Traversable
	if !c.Policy.AncestorsTraversable() {
		outcome = NotTraversable
	}
	logger.Debug("created ancestor", logger.Fields{"dir": dir, "outcome": outcome.String()})
	c.Announcer.Announce(dir)
	return outcome, nil
}
