// Package multibyte reports how the active locale converts multibyte text
// to wide characters: whether the codeset is multibyte at all, whether the
// locale name claims UTF-8, and whether a fixed set of UTF-8 samples decode
// to the expected UCS-2 and UCS-4 code points.
//
// Go has no libc locale state, so the locale is taken from the environment
// the same way setlocale(LC_ALL, "") would pick it, and conversion goes
// through the charset decoders of golang.org/x/text.
package multibyte

import (
	"strings"
)

// DefaultLocale is used when no locale variable is set.
const DefaultLocale = "C"

// localeVars are consulted in order; the first non-empty one wins.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Locale is a locale name and the codeset part of it.
type Locale struct {
	Name    string
	Codeset string
}

// ParseLocale splits a name of the form language[_territory][.codeset][@modifier].
func ParseLocale(name string) Locale {
	loc := Locale{Name: name}
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return loc
	}
	codeset := name[dot+1:]
	if at := strings.IndexByte(codeset, '@'); at >= 0 {
		codeset = codeset[:at]
	}
	loc.Codeset = codeset
	return loc
}

// ResolveLocale picks the character type locale from the environment.
// lookupEnv is usually os.LookupEnv.
func ResolveLocale(lookupEnv func(string) (string, bool)) Locale {
	for _, key := range localeVars {
		if v, ok := lookupEnv(key); ok && v != "" {
			return ParseLocale(v)
		}
	}
	return ParseLocale(DefaultLocale)
}

// IsPortable reports whether loc is the C or POSIX locale.
func (loc Locale) IsPortable() bool {
	return loc.Name == "C" || loc.Name == "POSIX"
}

// IsUTF8Name reports whether the part of the name after its last dot is
// one of the usual spellings of UTF-8. Only the name is checked.
func (loc Locale) IsUTF8Name() bool {
	dot := strings.LastIndexByte(loc.Name, '.')
	if dot < 0 {
		return false
	}
	switch loc.Name[dot+1:] {
	case "UTF-8", "UTF8", "utf-8", "utf8":
		return true
	}
	return false
}
