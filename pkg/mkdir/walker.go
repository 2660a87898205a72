//go:build unix

package mkdir

import (
	"errors"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"golang.org/x/sys/unix"
)

// Walker creates one path: its missing ancestors through the Creator and
// then the final directory with the policy's mode.
type Walker struct {
	Creator   Creator
	Policy    *Policy
	Announcer Announcer
}

type segment struct {
	name string
	end  int // offset in the path just past name
}

// splitSegments splits a path into its non-empty components.
func splitSegments(dir string) []segment {
	var segs []segment
	for i := 0; i < len(dir); {
		for i < len(dir) && dir[i] == '/' {
			i++
		}
		start := i
		for i < len(dir) && dir[i] != '/' {
			i++
		}
		if i > start {
			segs = append(segs, segment{name: dir[start:i], end: i})
		}
	}
	return segs
}

func isDir(st unix.Stat_t) bool {
	return uint32(st.Mode)&unix.S_IFMT == unix.S_IFDIR
}

// MakeDirParents creates dir. When the Creator makes ancestors, missing
// ones are created first and an existing directory at dir is not an error.
// Otherwise dir is created as a single segment and must not exist yet.
func (w *Walker) MakeDirParents(dir string) error {
	quoted := fsutil.QuoteName(dir)
	segs := splitSegments(dir)
	if !w.Creator.CreatesAncestors() || len(segs) == 0 {
		return w.makeFinal(CurrentDir(), dir, dir, quoted)
	}

	cur := CurrentDir()
	if dir[0] == '/' {
		root, err := openRoot()
		if err != nil {
			return errutils.NewPathError(errutils.ErrCreateDirectory, fsutil.QuoteName("/"), err)
		}
		cur = root
	}
	defer func() { _ = cur.Close() }()

	for _, seg := range segs[:len(segs)-1] {
		if seg.name == "." {
			continue
		}

		outcome := Failed
		var mkErr error
		if seg.name != ".." {
			outcome, mkErr = w.Creator.MakeAncestor(cur, dir[:seg.end], seg.name)
		}

		var flags int
		switch outcome {
		case Traversable:
			flags = unix.O_RDONLY | unix.O_NOFOLLOW
		case NotTraversable:
			flags = searchOnly | unix.O_NOFOLLOW
		default:
			flags = searchOnly
		}
		next, err := cur.Open(seg.name, flags)
		if err != nil {
			if mkErr != nil && errors.Is(err, unix.ENOENT) {
				err = mkErr
			}
			return errutils.NewPathError(errutils.ErrCreateDirectory, fsutil.QuoteName(dir[:seg.end]), err)
		}
		_ = cur.Close()
		cur = next
	}

	return w.makeFinal(cur, dir, segs[len(segs)-1].name, quoted)
}

func (w *Walker) makeFinal(parent Dir, dir, name, quoted string) error {
	p := w.Policy
	err := parent.Mkdir(name, p.createMode())
	if err == nil {
		w.Announcer.Announce(dir)
		if p.keepsSpecialBits() && !p.explicitPermissions() {
			return nil
		}
		return w.adjustMode(parent, name, quoted)
	}

	if !errors.Is(err, unix.ENOENT) && w.Creator.CreatesAncestors() {
		st, statErr := parent.Stat(name)
		switch {
		case statErr == nil:
			if isDir(st) {
				logger.Debug("directory exists", logger.Fields{"dir": dir})
				return nil
			}
		case errors.Is(err, unix.EEXIST) && !errors.Is(statErr, unix.ENOENT) && !errors.Is(statErr, unix.ENOTDIR):
			return errutils.NewPathError(errutils.ErrStat, quoted, statErr)
		}
	}
	return errutils.NewPathError(errutils.ErrCreateDirectory, quoted, err)
}

// adjustMode gives a just created directory the bits the mode
// specification asked for, leaving the others as created.
func (w *Walker) adjustMode(parent Dir, name, quoted string) error {
	p := w.Policy
	st, err := parent.Lstat(name)
	if err == nil && !isDir(st) {
		err = unix.ENOTDIR
	}
	if err != nil {
		return errutils.NewPathError(errutils.ErrChangePermissions, quoted, err)
	}

	dirMode := uint32(st.Mode) & fsutil.ChmodModeBits
	if (dirMode^p.Mode)&p.ModeBits&fsutil.ChmodModeBits == 0 {
		return nil
	}
	chmodMode := p.Mode | dirMode&^p.ModeBits
	logger.Debug("changing mode", logger.Fields{"from": octal(dirMode), "to": octal(chmodMode)})
	if err := parent.Chmod(name, chmodMode&fsutil.ChmodModeBits); err != nil {
		return errutils.NewPathError(errutils.ErrChangePermissions, quoted, err)
	}
	return nil
}
