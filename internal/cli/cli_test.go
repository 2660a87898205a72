package cli

import (
	"bytes"
	"testing"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/spf13/cobra"
)

type result struct {
	err    error
	stdout string
	stderr string
	log    string
}

// execute runs cmd with args and collects everything it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) result {
	t.Helper()
	var stdout, stderr, log bytes.Buffer
	logger.SetTestOutput(&log)
	t.Cleanup(func() {
		logger.UnsetTestOutput()
		logger.InitLogger("", levelDefault)
	})

	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return result{err: err, stdout: stdout.String(), stderr: stderr.String(), log: log.String()}
}
