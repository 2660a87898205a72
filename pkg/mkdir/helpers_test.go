//go:build unix

package mkdir

import (
	"bytes"
	"os"
	"testing"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// setUmask installs mask for the rest of the test.
func setUmask(t *testing.T, mask fsutil.Umask) {
	t.Helper()
	old := fsutil.ProcessUmask{}.Swap(mask)
	t.Cleanup(func() { fsutil.ProcessUmask{}.Swap(old) })
}

// chdir changes the working directory to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// captureLog collects diagnostics for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger.SetTestOutput(buf)
	logger.InitLogger("mkdir", "info")
	t.Cleanup(func() {
		logger.UnsetTestOutput()
		logger.InitLogger("mkdir", "info")
	})
	return buf
}

// modeOf returns the permission and special bits of path.
func modeOf(t *testing.T, path string) uint32 {
	t.Helper()
	var st unix.Stat_t
	require.NoError(t, unix.Stat(path, &st))
	return uint32(st.Mode) & fsutil.ChmodModeBits
}

func newMaterializer(t *testing.T, opts Options) *Materializer {
	t.Helper()
	m, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}
