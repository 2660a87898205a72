package cli

import (
	"os"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/multibyte"
	"github.com/spf13/cobra"
)

// NewProbeCmd creates the mbprobe command.
func NewProbeCmd() *cobra.Command {
	return newProbeCmd(os.LookupEnv)
}

func newProbeCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		locale string
		output string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "mbprobe",
		Short: "Report multibyte and wide character support of the locale",
		Long: `Report whether the locale is multibyte, whether its name claims UTF-8,
and whether UTF-8 samples decode to the expected UCS-2 and UCS-4 code points.

The locale is taken from LC_ALL, LC_CTYPE or LANG, in that order.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				initLogging(MbprobeProgram, false)
				return usageError(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd, lookupEnv, locale, output, debug)
		},
	}
	silence(cmd)
	setVersion(cmd)

	cmd.Flags().StringVar(&locale, "locale", "", "probe this locale instead of the environment's")
	cmd.Flags().StringVarP(&output, "output", "o", string(multibyte.FormatText), "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&debug, "debug", false, "print diagnostics of the codeset lookup")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

func runProbe(cmd *cobra.Command, lookupEnv func(string) (string, bool), locale, output string, debug bool) error {
	initLogging(MbprobeProgram, debug)

	format, err := multibyte.ParseFormat(output)
	if err != nil {
		return usageError(cmd, err)
	}

	loc := multibyte.ResolveLocale(lookupEnv)
	if locale != "" {
		loc = multibyte.ParseLocale(locale)
	}
	probe := multibyte.NewProbe(loc)
	logger.Debug("probing locale", logger.Fields{"locale": loc.Name, "encoding": probe.EncodingName()})

	if err := probe.Report().Write(cmd.OutOrStdout(), format); err != nil {
		logger.Error("write error", logger.Fields{logger.ErrorKey: err})
		return err
	}
	return nil
}
