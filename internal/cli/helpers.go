package cli

import (
	"fmt"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/spf13/cobra"
)

// initLogging points diagnostics at the program name and level of one run.
func initLogging(prog string, debug bool) {
	level := levelDefault
	if debug {
		level = levelDebug
	}
	logger.InitLogger(prog, level)
}

// usageError reports a command line problem the way the coreutils do and
// hands err back for the exit status.
func usageError(cmd *cobra.Command, err error) error {
	logger.Error(err.Error())
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), tryHelpFormat, cmd.CommandPath())
	return err
}

// silence leaves error reporting to the command itself.
func silence(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		initLogging(c.Name(), false)
		return usageError(c, err)
	})
}
