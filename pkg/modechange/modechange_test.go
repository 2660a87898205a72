package modechange

import (
	"testing"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileInvalid(t *testing.T) {
	for _, spec := range []string{
		"",
		"8",
		"17777",
		"0o755",
		"rwx",
		"a",
		"u+z",
		"u=rwx,",
		"u=rwx,,g=r",
		"ug=r7",
		"u=7",
		"+755x",
	} {
		t.Run(spec, func(t *testing.T) {
			changes, err := Compile(spec)
			assert.ErrorIs(t, err, errutils.ErrInvalidMode)
			assert.Nil(t, changes)
		})
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		base     uint32
		dir      bool
		umask    uint32
		wantMode uint32
		wantBits uint32
	}{
		{
			name: "octal 700", spec: "700", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o700, wantBits: 0o1777,
		},
		{
			name: "octal ignores umask", spec: "777", base: 0o777, dir: true, umask: 0o077,
			wantMode: 0o777, wantBits: 0o1777,
		},
		{
			name: "octal setgid on directory", spec: "2775", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o2775, wantBits: 0o3777,
		},
		{
			name: "five digit octal clears setuid", spec: "00755", base: 0o4777, dir: true, umask: 0,
			wantMode: 0o755, wantBits: 0o7777,
		},
		{
			name: "four digit octal keeps directory setgid", spec: "0755", base: 0o2777, dir: true, umask: 0,
			wantMode: 0o2755, wantBits: 0o1777,
		},
		{
			name: "symbolic assign", spec: "u=rwx,go=", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o700, wantBits: 0o1777,
		},
		{
			name: "add group write", spec: "g+w", base: 0o755, dir: true, umask: 0o022,
			wantMode: 0o775, wantBits: 0o020,
		},
		{
			name: "who-less add honours umask", spec: "+w", base: 0o555, dir: true, umask: 0o022,
			wantMode: 0o755, wantBits: 0o200,
		},
		{
			name: "who-less assign honours umask", spec: "=rwx", base: 0o777, dir: true, umask: 0o027,
			wantMode: 0o750, wantBits: 0o1777,
		},
		{
			name: "remove other", spec: "o-rwx", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o770, wantBits: 0o007,
		},
		{
			name: "all assign", spec: "a=rwx", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o777, wantBits: 0o1777,
		},
		{
			name: "copy user bits to group", spec: "g=u", base: 0o750, dir: true, umask: 0o022,
			wantMode: 0o770, wantBits: 0o070,
		},
		{
			name: "setuid for user", spec: "u+s", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o4777, wantBits: 0o4000,
		},
		{
			name: "sticky", spec: "+t", base: 0o777, dir: true, umask: 0o022,
			wantMode: 0o1777, wantBits: 0o1000,
		},
		{
			name: "capital X on directory", spec: "a+X", base: 0o644, dir: true, umask: 0,
			wantMode: 0o755, wantBits: 0o111,
		},
		{
			name: "capital X on plain file", spec: "a+X", base: 0o644, dir: false, umask: 0,
			wantMode: 0o644, wantBits: 0,
		},
		{
			name: "multiple operations in one clause", spec: "u=rw+x", base: 0o000, dir: true, umask: 0,
			wantMode: 0o700, wantBits: 0o700,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			changes, err := Compile(testCase.spec)
			require.NoError(t, err)

			mode, bits := changes.Adjust(testCase.base, testCase.dir, testCase.umask)
			assert.Equalf(t, testCase.wantMode, mode, "mode %04o", mode)
			assert.Equalf(t, testCase.wantBits, bits, "bits %04o", bits)
		})
	}
}
