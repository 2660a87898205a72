//go:build unix

package mkdir

import (
	"os"
	"strings"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"github.com/cperrin88/mkdirtools/pkg/seclabel"
	"github.com/hashicorp/go-multierror"
)

// Options configures a Materializer.
type Options struct {
	// Parents makes missing ancestors and tolerates existing directories.
	Parents bool
	// ModeSpec is a chmod-style mode for the final directories.
	ModeSpec string
	// Labeler labels created directories. Nil disables labeling.
	Labeler seclabel.Labeler
	// Announcer is told about created directories. Nil is Silent.
	Announcer Announcer
	// Umask swaps the umask. Nil is the process umask.
	Umask fsutil.UmaskSwapper
}

// Materializer creates the directories of one run.
type Materializer struct {
	policy  *Policy
	umask   fsutil.UmaskSwapper
	labeler seclabel.Labeler
	parents bool
	walker  *Walker
}

// New resolves the run's Policy, installing its umask, and picks the
// creation strategy. It fails only on an invalid mode specification.
func New(opts Options) (*Materializer, error) {
	if opts.Umask == nil {
		opts.Umask = fsutil.ProcessUmask{}
	}
	if opts.Labeler == nil {
		opts.Labeler = seclabel.Nop{}
	}
	if opts.Announcer == nil {
		opts.Announcer = Silent{}
	}

	policy, err := ResolvePolicy(opts.Umask, opts.Parents, opts.ModeSpec)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved policy", logger.Fields{
		"mode":           octal(policy.Mode),
		"mode_bits":      octal(policy.ModeBits),
		"ancestor_umask": policy.AncestorUmask.String(),
		"self_umask":     policy.SelfUmask.String(),
	})

	var creator Creator = SingleSegment{}
	if opts.Parents {
		creator = &AncestorCreator{
			Umask:     opts.Umask,
			Policy:    policy,
			Labeler:   opts.Labeler,
			Announcer: opts.Announcer,
		}
	}

	return &Materializer{
		policy:  policy,
		umask:   opts.Umask,
		labeler: opts.Labeler,
		parents: opts.Parents,
		walker: &Walker{
			Creator:   creator,
			Policy:    policy,
			Announcer: opts.Announcer,
		},
	}, nil
}

// Policy returns the resolved permission policy.
func (m *Materializer) Policy() *Policy {
	return m.policy
}

// Process creates one directory. Labeling problems are reported as
// warnings and never fail the directory.
func (m *Materializer) Process(dir string) error {
	if !m.parents {
		if err := m.labeler.SetDefaultContext(dir, os.ModeDir); err != nil && !seclabel.IsIgnorable(err) {
			logger.Warn(errutils.ErrSetDefaultContext.Error()+" for "+fsutil.QuoteName(dir), logger.Fields{logger.ErrorKey: err})
		}
	}

	if err := m.walker.MakeDirParents(dir); err != nil {
		return err
	}

	// Ancestors were labeled before creation, but the final directory got
	// the context computed for its parent. Only the final directory is
	// relabeled.
	if m.parents {
		if err := m.labeler.RestoreContext(finalPath(dir)); err != nil && !seclabel.IsIgnorable(err) {
			logger.Warn(errutils.ErrRestoreContext.Error()+" for "+fsutil.QuoteName(dir), logger.Fields{logger.ErrorKey: err})
		}
	}
	return nil
}

// Run processes every directory in order. A failure is reported and the
// remaining directories are still attempted; the returned error collects
// all failures.
func (m *Materializer) Run(dirs []string) error {
	var result *multierror.Error
	for _, dir := range dirs {
		if err := m.Process(dir); err != nil {
			logger.Error(err.Error())
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Close restores the umask found when the Materializer was created.
func (m *Materializer) Close() error {
	m.policy.Restore(m.umask)
	return nil
}

// finalPath strips trailing slashes so that dir names the directory itself
// rather than what a trailing symlink points to.
func finalPath(dir string) string {
	trimmed := strings.TrimRight(dir, "/")
	if trimmed == "" {
		return dir
	}
	return trimmed
}
