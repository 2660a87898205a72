package cli

import (
	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/mkdir"
	"github.com/cperrin88/mkdirtools/pkg/seclabel"
	"github.com/spf13/cobra"
)

// MkdirOptions is the resolved command line of one mkdir run.
type MkdirOptions struct {
	Mode    string
	Parents bool
	Verbose bool
	Context contextFlag
	Debug   bool
}

// NewMkdirCmd creates the mkdir command.
func NewMkdirCmd() *cobra.Command {
	return newMkdirCmd(seclabel.Detect)
}

func newMkdirCmd(detect func() seclabel.Module) *cobra.Command {
	var opts MkdirOptions

	cmd := &cobra.Command{
		Use:   "mkdir [OPTION]... DIRECTORY...",
		Short: "Create directories",
		Long: `Create the DIRECTORY(ies), if they do not already exist.

Mandatory arguments to long options are mandatory for short options too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkdir(cmd, detect, &opts, args)
		},
	}
	silence(cmd)
	setVersion(cmd)

	flags := cmd.Flags()
	flags.StringVarP(&opts.Mode, "mode", "m", "", "set file mode (as in chmod), not a=rwx - umask")
	flags.BoolVarP(&opts.Parents, "parents", "p", false,
		"no error if existing, make parent directories as needed,\nwith their file modes unaffected by any -m option")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print a message for each created directory")
	// -Z is --context without a value.
	flags.VarPF(&opts.Context, "context", "Z",
		"set the SELinux security context of each created directory\nto the default type, or if CTX is specified then set the\nSELinux or SMACK security context to CTX").NoOptDefVal = defaultContextArg
	flags.BoolVar(&opts.Debug, "debug", false, "print diagnostics of the permission and label decisions")
	_ = flags.MarkHidden("debug")

	return cmd
}

func runMkdir(cmd *cobra.Command, detect func() seclabel.Module, opts *MkdirOptions, dirs []string) error {
	initLogging(MkdirProgram, opts.Debug)

	if len(dirs) == 0 {
		return usageError(cmd, errutils.ErrMissingOperand)
	}

	labeler, err := setupLabeling(detect(), opts.Context.useDefault, opts.Context.explicit)
	if err != nil {
		return err
	}
	defer func() { _ = labeler.Close() }()

	var announcer mkdir.Announcer = mkdir.Silent{}
	if opts.Verbose {
		announcer = mkdir.Verbose{Out: cmd.OutOrStdout(), Program: MkdirProgram}
	}

	materializer, err := mkdir.New(mkdir.Options{
		Parents:   opts.Parents,
		ModeSpec:  opts.Mode,
		Labeler:   labeler,
		Announcer: announcer,
	})
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer func() { _ = materializer.Close() }()

	return materializer.Run(dirs)
}
