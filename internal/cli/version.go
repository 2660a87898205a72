package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// setVersion makes --version print the build information.
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate(versionText(cmd.Name()))
}

func versionText(prog string) string {
	return fmt.Sprintf("%s (mkdirtools) %s\nBuild date: %s\nGit commit: %s\n", prog, Version, BuildDate, GitCommit)
}
