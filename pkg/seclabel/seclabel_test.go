package seclabel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestIsIgnorable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "ENOTSUP", err: unix.ENOTSUP, want: true},
		{name: "EOPNOTSUPP", err: unix.EOPNOTSUPP, want: true},
		{name: "ENODATA wrapped", err: fmt.Errorf("getxattr: %w", unix.ENODATA), want: true},
		{name: "path error", err: &os.PathError{Op: "lsetxattr", Path: "x", Err: unix.ENOTSUP}, want: true},
		{name: "EACCES", err: unix.EACCES, want: false},
		{name: "EINVAL", err: unix.EINVAL, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, IsIgnorable(testCase.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SELinux", SELinux.String())
	assert.Equal(t, "SMACK", SMACK.String())
	assert.Equal(t, "none", None.String())
}

func TestNop(t *testing.T) {
	var l Labeler = Nop{}
	assert.NoError(t, l.SetDefaultContext("x", os.ModeDir))
	assert.NoError(t, l.RestoreContext("x"))
	assert.NoError(t, l.Close())
}

func TestNoneModule(t *testing.T) {
	m := NoneModule{}
	assert.Equal(t, None, m.Kind())

	l, err := m.OpenDefault()
	assert.Nil(t, l)
	assert.ErrorIs(t, err, unix.ENOTSUP)
	assert.True(t, IsIgnorable(err))
	assert.Contains(t, err.Error(), errutils.ErrLabelingUnsupported.Error())

	assert.ErrorIs(t, m.SetCreateContext("user_u:object_r:tmp_t:s0"), unix.ENOTSUP)
}

func TestSecurityClass(t *testing.T) {
	assert.Equal(t, "dir", securityClass(os.ModeDir|0o755))
	assert.Equal(t, "file", securityClass(0o644))
	assert.Equal(t, "lnk_file", securityClass(os.ModeSymlink))
	assert.Equal(t, "fifo_file", securityClass(os.ModeNamedPipe))
	assert.Equal(t, "sock_file", securityClass(os.ModeSocket))
	assert.Equal(t, "chr_file", securityClass(os.ModeDevice|os.ModeCharDevice))
	assert.Equal(t, "blk_file", securityClass(os.ModeDevice))
}

func TestSmackSetCreateContext(t *testing.T) {
	attr := filepath.Join(t.TempDir(), "current")
	require.NoError(t, os.WriteFile(attr, nil, 0o600))

	orig := smackSelfPath
	smackSelfPath = attr
	t.Cleanup(func() { smackSelfPath = orig })

	m := smackModule{}
	assert.Equal(t, SMACK, m.Kind())
	require.NoError(t, m.SetCreateContext("System::Shared"))

	data, err := os.ReadFile(attr)
	require.NoError(t, err)
	assert.Equal(t, "System::Shared", string(data))

	for _, bad := range []string{"", "-dash", "has space", "a/b"} {
		assert.ErrorIs(t, m.SetCreateContext(bad), unix.EINVAL, bad)
	}

	_, err = m.OpenDefault()
	assert.True(t, IsIgnorable(err))
}

func TestDetectWithoutModules(t *testing.T) {
	origSELinux := selinuxEnabled
	selinuxEnabled = func() bool { return false }
	t.Cleanup(func() { selinuxEnabled = origSELinux })

	if smackEnabled() {
		t.Skip("SMACK is active on this host")
	}
	assert.Equal(t, None, Detect().Kind())
}
