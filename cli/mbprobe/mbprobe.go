package main

import (
	"os"

	"github.com/cperrin88/mkdirtools/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return cli.NewProbeCmd()
}
