//go:build unix

package mkdir

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/mkdirtools/pkg/seclabel/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

func TestProcessLabelsSingleDirectory(t *testing.T) {
	setUmask(t, 0o022)
	dir := filepath.Join(t.TempDir(), "labeled")

	ctrl := gomock.NewController(t)
	labeler := mocks.NewMockLabeler(ctrl)
	labeler.EXPECT().SetDefaultContext(dir, os.ModeDir).Return(nil).Times(1)
	labeler.EXPECT().RestoreContext(gomock.Any()).Times(0)

	m := newMaterializer(t, Options{Labeler: labeler})
	require.NoError(t, m.Process(dir))
	assert.DirExists(t, dir)
}

func TestProcessLabelsAncestorsAndRestoresFinal(t *testing.T) {
	setUmask(t, 0o022)
	root := t.TempDir()
	chdir(t, root)

	ctrl := gomock.NewController(t)
	labeler := mocks.NewMockLabeler(ctrl)
	gomock.InOrder(
		labeler.EXPECT().SetDefaultContext("a", os.ModeDir).Return(nil),
		labeler.EXPECT().SetDefaultContext(gomock.Any(), os.ModeDir).Return(nil),
		labeler.EXPECT().RestoreContext("a/b/c").Return(nil),
	)

	m := newMaterializer(t, Options{Parents: true, Labeler: labeler})
	require.NoError(t, m.Process("a/b/c/"))
	assert.DirExists(t, filepath.Join(root, "a", "b", "c"))
}

func TestLabelFailuresDoNotFailTheDirectory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantWarn string
	}{
		{
			name:     "permission denied is reported",
			err:      unix.EACCES,
			wantWarn: "mkdir: failed to set default creation context for '%s': Permission denied\n",
		},
		{
			name: "unsupported is silent",
			err:  unix.ENOTSUP,
		},
		{
			name: "missing attribute is silent",
			err:  unix.ENODATA,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			setUmask(t, 0o022)
			log := captureLog(t)
			dir := filepath.Join(t.TempDir(), "d")

			ctrl := gomock.NewController(t)
			labeler := mocks.NewMockLabeler(ctrl)
			labeler.EXPECT().SetDefaultContext(dir, os.ModeDir).Return(testCase.err)

			m := newMaterializer(t, Options{Labeler: labeler})
			require.NoError(t, m.Process(dir))
			assert.DirExists(t, dir)

			if testCase.wantWarn == "" {
				assert.Empty(t, log.String())
			} else {
				assert.Equal(t, fmt.Sprintf(testCase.wantWarn, dir), log.String())
			}
		})
	}
}

func TestAncestorLabelFailuresKeepTheAncestor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantWarn string
	}{
		{
			name:     "permission denied is reported",
			err:      unix.EACCES,
			wantWarn: "mkdir: failed to set default creation context for 'anc': Permission denied\n",
		},
		{
			name: "unsupported is silent",
			err:  unix.ENOTSUP,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			setUmask(t, 0o077)
			log := captureLog(t)
			root := t.TempDir()
			chdir(t, root)

			ctrl := gomock.NewController(t)
			labeler := mocks.NewMockLabeler(ctrl)
			labeler.EXPECT().SetDefaultContext("anc", os.ModeDir).Return(testCase.err)
			labeler.EXPECT().RestoreContext("anc/leaf").Return(nil)

			m := newMaterializer(t, Options{Parents: true, Labeler: labeler})
			require.NoError(t, m.Process("anc/leaf"))

			anc := filepath.Join(root, "anc")
			assert.DirExists(t, anc)
			assert.Equal(t, uint32(0o700), modeOf(t, anc))
			assert.Equal(t, uint32(0o700), modeOf(t, filepath.Join(anc, "leaf")))
			if testCase.wantWarn == "" {
				assert.Empty(t, log.String())
			} else {
				assert.Equal(t, testCase.wantWarn, log.String())
			}
		})
	}
}

func TestRestoreFailureIsAWarning(t *testing.T) {
	setUmask(t, 0o022)
	log := captureLog(t)
	dir := filepath.Join(t.TempDir(), "r")

	ctrl := gomock.NewController(t)
	labeler := mocks.NewMockLabeler(ctrl)
	labeler.EXPECT().SetDefaultContext(gomock.Any(), os.ModeDir).Return(nil).AnyTimes()
	labeler.EXPECT().RestoreContext(dir).Return(unix.EPERM)

	m := newMaterializer(t, Options{Parents: true, Labeler: labeler})
	require.NoError(t, m.Process(dir))
	assert.Contains(t, log.String(), "mkdir: failed to restore context for '"+dir+"': Operation not permitted\n")
}

func TestRestoreSkippedWhenCreationFails(t *testing.T) {
	setUmask(t, 0o022)
	captureLog(t)
	root := t.TempDir()
	file := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	ctrl := gomock.NewController(t)
	labeler := mocks.NewMockLabeler(ctrl)
	labeler.EXPECT().SetDefaultContext(gomock.Any(), os.ModeDir).Return(nil).AnyTimes()
	labeler.EXPECT().RestoreContext(gomock.Any()).Times(0)

	m := newMaterializer(t, Options{Parents: true, Labeler: labeler})
	assert.Error(t, m.Process(filepath.Join(file, "sub")))
}

func TestVerboseOnlyAnnouncesNewDirectories(t *testing.T) {
	setUmask(t, 0o022)
	root := t.TempDir()
	existing := filepath.Join(root, "old")
	require.NoError(t, os.Mkdir(existing, 0o755))

	out := &bytes.Buffer{}
	m := newMaterializer(t, Options{Parents: true, Announcer: Verbose{Out: out, Program: "mkdir"}})
	require.NoError(t, m.Run([]string{existing, filepath.Join(existing, "new")}))

	assert.Equal(t, "mkdir: created directory '"+filepath.Join(existing, "new")+"'\n", out.String())
}

func TestFinalPath(t *testing.T) {
	assert.Equal(t, "a/b", finalPath("a/b///"))
	assert.Equal(t, "a", finalPath("a"))
	assert.Equal(t, "/", finalPath("/"))
	assert.Equal(t, "//", finalPath("//"))
}

func TestSingleSegmentMakesNoAncestors(t *testing.T) {
	var c SingleSegment
	assert.False(t, c.CreatesAncestors())

	outcome, err := c.MakeAncestor(CurrentDir(), "a", "a")
	assert.Equal(t, Failed, outcome)
	assert.ErrorIs(t, err, unix.ENOENT)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "traversable", Traversable.String())
	assert.Equal(t, "not traversable", NotTraversable.String())
}
