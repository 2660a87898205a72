package mkdir

import (
	"fmt"
	"io"

	"github.com/cperrin88/mkdirtools/pkg/fsutil"
)

// Announcer is told about every directory actually created.
type Announcer interface {
	Announce(dir string)
}

// Silent drops announcements.
type Silent struct{}

func (Silent) Announce(string) {}

// Verbose prints "<prog>: created directory 'DIR'" lines.
type Verbose struct {
	Out     io.Writer
	Program string
}

func (v Verbose) Announce(dir string) {
	_, _ = fmt.Fprintf(v.Out, "%s: created directory %s\n", v.Program, fsutil.QuoteName(dir))
}
