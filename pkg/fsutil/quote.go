package fsutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// QuoteName quotes a file name for diagnostics so that it can be pasted
// back into a POSIX shell. Plain names are wrapped in single quotes. Names
// holding a single quote use double quotes when that is safe, and control
// characters are written as $'\n' style escapes between quoted runs.
func QuoteName(name string) string {
	if name == "" {
		return "''"
	}
	if !hasControl(name) {
		if !strings.ContainsRune(name, '\'') {
			return "'" + name + "'"
		}
		if !strings.ContainsAny(name, "\"$`\\") {
			return `"` + name + `"`
		}
		return "'" + strings.ReplaceAll(name, "'", `'\''`) + "'"
	}

	var b strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString("'")
		b.WriteString(strings.ReplaceAll(run.String(), "'", `'\''`))
		b.WriteString("'")
		run.Reset()
	}
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if r == utf8.RuneError && size == 1 || isControl(r) {
			flush()
			b.WriteString("$'")
			b.WriteString(escapeByte(name[i], r, size))
			b.WriteString("'")
		} else {
			run.WriteString(name[i : i+size])
		}
		i += size
	}
	flush()
	return b.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 || isControl(r) {
			return true
		}
		i += size
	}
	return false
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

func escapeByte(c byte, r rune, size int) string {
	if size == 1 && r != utf8.RuneError {
		switch c {
		case '\a':
			return `\a`
		case '\b':
			return `\b`
		case '\t':
			return `\t`
		case '\n':
			return `\n`
		case '\v':
			return `\v`
		case '\f':
			return `\f`
		case '\r':
			return `\r`
		}
	}
	return fmt.Sprintf(`\%03o`, c)
}
