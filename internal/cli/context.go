package cli

import (
	"fmt"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"github.com/cperrin88/mkdirtools/pkg/seclabel"
	"github.com/spf13/pflag"
)

// contextFlag is the value of --context[=CTX].
type contextFlag struct {
	useDefault bool
	explicit   string
}

var _ pflag.Value = (*contextFlag)(nil)

func (f *contextFlag) String() string {
	return f.explicit
}

func (f *contextFlag) Set(v string) error {
	if v == defaultContextArg {
		f.useDefault = true
		return nil
	}
	f.explicit = v
	return nil
}

func (f *contextFlag) Type() string {
	return "CTX"
}

// setupLabeling turns the label flags into the Labeler used for the run.
// Only an explicit context that cannot be installed is fatal; everything
// else degrades to unlabeled creation with at most a warning.
func setupLabeling(module seclabel.Module, useDefault bool, explicit string) (seclabel.Labeler, error) {
	var labeler seclabel.Labeler = seclabel.Nop{}
	kind := module.Kind()

	if useDefault && kind == seclabel.SELinux {
		l, err := module.OpenDefault()
		if err != nil {
			logger.Warn("warning: ignoring --context", logger.Fields{logger.ErrorKey: err})
		} else {
			labeler = l
		}
	}

	if explicit == "" {
		return labeler, nil
	}
	if kind == seclabel.None {
		logger.Warn("warning: ignoring --context; it requires an SELinux/SMACK-enabled kernel")
		return labeler, nil
	}
	if err := module.SetCreateContext(explicit); err != nil {
		_ = labeler.Close()
		quoted := fsutil.QuoteName(explicit)
		logger.Error(fmt.Sprintf("%s to %s", errutils.ErrSetCreateContext, quoted), logger.Fields{logger.ErrorKey: err})
		return nil, fmt.Errorf("%w to %s: %w", errutils.ErrSetCreateContext, quoted, err)
	}
	logger.Debug("installed file creation context", logger.Fields{"module": kind.String(), "context": explicit})
	return labeler, nil
}
