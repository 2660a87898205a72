package multibyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Locale
	}{
		{
			name: "nothing set",
			env:  map[string]string{},
			want: Locale{Name: "C"},
		},
		{
			name: "LANG only",
			env:  map[string]string{"LANG": "en_US.UTF-8"},
			want: Locale{Name: "en_US.UTF-8", Codeset: "UTF-8"},
		},
		{
			name: "LC_CTYPE beats LANG",
			env:  map[string]string{"LANG": "en_US.UTF-8", "LC_CTYPE": "ja_JP.eucJP"},
			want: Locale{Name: "ja_JP.eucJP", Codeset: "eucJP"},
		},
		{
			name: "LC_ALL beats everything",
			env:  map[string]string{"LANG": "en_US.UTF-8", "LC_CTYPE": "ja_JP.eucJP", "LC_ALL": "POSIX"},
			want: Locale{Name: "POSIX"},
		},
		{
			name: "empty values are skipped",
			env:  map[string]string{"LC_ALL": "", "LC_CTYPE": "", "LANG": "de_DE.ISO-8859-15@euro"},
			want: Locale{Name: "de_DE.ISO-8859-15@euro", Codeset: "ISO-8859-15"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ResolveLocale(envOf(testCase.env)))
		})
	}
}

func TestIsUTF8Name(t *testing.T) {
	for name, want := range map[string]bool{
		"C":                false,
		"POSIX":            false,
		"C.UTF-8":          true,
		"en_US.UTF8":       true,
		"en_US.utf-8":      true,
		"en_US.utf8":       true,
		"en_US.Utf8":       false,
		"en_US.UTF-8@euro": false,
		"zh_TW.Big5":       false,
		"en_US.":           false,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLocale(name).IsUTF8Name())
		})
	}
}

func TestIsPortable(t *testing.T) {
	assert.True(t, ParseLocale("C").IsPortable())
	assert.True(t, ParseLocale("POSIX").IsPortable())
	assert.False(t, ParseLocale("C.UTF-8").IsPortable())
	assert.False(t, ParseLocale("en_US").IsPortable())
}
