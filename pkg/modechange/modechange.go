// Package modechange compiles chmod-style mode specifications and applies
// them to file modes.
//
// A specification is either an octal number ("755", "2775") or a comma
// separated list of symbolic clauses such as "u=rwx,g+rx,o-w" or "a+X".
// Compile validates a specification once; Changes.Adjust then applies it to
// any starting mode, honouring the umask for clauses without a who list.
package modechange

import (
	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"github.com/cperrin88/mkdirtools/pkg/fsutil"
)

type flag uint8

const (
	// ordinary sets the bits in value.
	ordinary flag = iota
	// copyExisting copies the u, g or o bits of the old mode.
	copyExisting
	// xIfAnyX is the X permission: execute if already executable or a directory.
	xIfAnyX
)

const allBits = fsutil.ChmodModeBits

// Change is one compiled operation of a mode specification.
type Change struct {
	op        byte // '=', '+' or '-'
	flag      flag
	affected  uint32 // bits selected by the who list, 0 if none was given
	value     uint32
	mentioned uint32 // bits explicitly mentioned, used to keep setuid/setgid on directories
}

// Changes is a compiled mode specification.
type Changes []Change

// Compile parses spec. It returns errutils.ErrInvalidMode if spec is not a
// valid octal or symbolic mode.
func Compile(spec string) (Changes, error) {
	if spec == "" {
		return nil, errutils.ErrInvalidMode
	}
	if isOctal(spec[0]) {
		return compileOctal(spec)
	}
	return compileSymbolic(spec)
}

func isOctal(c byte) bool {
	return '0' <= c && c <= '7'
}

func compileOctal(spec string) (Changes, error) {
	var octal uint32
	i := 0
	for ; i < len(spec) && isOctal(spec[i]); i++ {
		octal = 8*octal + uint32(spec[i]-'0')
		if octal > allBits {
			return nil, errutils.ErrInvalidMode
		}
	}
	if i != len(spec) {
		return nil, errutils.ErrInvalidMode
	}

	// Fewer than five digits cannot clear the setuid and setgid bits of a
	// directory, so they are only mentioned when set.
	mentioned := allBits
	if i < 5 {
		mentioned = octal&(fsutil.SetUID|fsutil.SetGID) | fsutil.Sticky | fsutil.PermBits
	}
	return Changes{{
		op:        '=',
		flag:      ordinary,
		affected:  allBits,
		value:     octal,
		mentioned: mentioned,
	}}, nil
}

func compileSymbolic(spec string) (Changes, error) {
	var changes Changes
	i := 0
	for {
		var affected uint32
	who:
		for ; i < len(spec); i++ {
			switch spec[i] {
			case 'u':
				affected |= fsutil.SetUID | fsutil.OwnerAll
			case 'g':
				affected |= fsutil.SetGID | fsutil.GroupAll
			case 'o':
				affected |= fsutil.Sticky | fsutil.OtherAll
			case 'a':
				affected |= allBits
			case '=', '+', '-':
				break who
			default:
				return nil, errutils.ErrInvalidMode
			}
		}
		if i == len(spec) {
			return nil, errutils.ErrInvalidMode
		}

		for i < len(spec) && isOp(spec[i]) {
			c := Change{op: spec[i], flag: copyExisting, affected: affected}
			i++

			switch {
			case i < len(spec) && isOctal(spec[i]):
				var octal uint32
				for ; i < len(spec) && isOctal(spec[i]); i++ {
					octal = 8*octal + uint32(spec[i]-'0')
					if octal > allBits {
						return nil, errutils.ErrInvalidMode
					}
				}
				if affected != 0 || (i < len(spec) && spec[i] != ',') {
					return nil, errutils.ErrInvalidMode
				}
				c.affected = allBits
				c.mentioned = allBits
				c.value = octal
				c.flag = ordinary
			case i < len(spec) && spec[i] == 'u':
				c.value = fsutil.OwnerAll
				i++
			case i < len(spec) && spec[i] == 'g':
				c.value = fsutil.GroupAll
				i++
			case i < len(spec) && spec[i] == 'o':
				c.value = fsutil.OtherAll
				i++
			default:
				c.flag = ordinary
			perms:
				for ; i < len(spec); i++ {
					switch spec[i] {
					case 'r':
						c.value |= fsutil.AllRead
					case 'w':
						c.value |= fsutil.AllWrite
					case 'x':
						c.value |= fsutil.AllExecute
					case 'X':
						c.flag = xIfAnyX
					case 's':
						// Only takes effect together with u or g.
						c.value |= fsutil.SetUID | fsutil.SetGID
					case 't':
						c.value |= fsutil.Sticky
					default:
						break perms
					}
				}
			}

			if c.mentioned == 0 {
				if affected != 0 {
					c.mentioned = affected & c.value
				} else {
					c.mentioned = c.value
				}
			}
			changes = append(changes, c)
		}

		if i == len(spec) {
			return changes, nil
		}
		if spec[i] != ',' {
			return nil, errutils.ErrInvalidMode
		}
		i++
	}
}

func isOp(c byte) bool {
	return c == '=' || c == '+' || c == '-'
}

// Adjust applies the changes to oldMode and returns the new mode together
// with the bits the changes explicitly set or cleared. dir reports whether
// the mode belongs to a directory, in which case the setuid and setgid bits
// are preserved unless they were mentioned. Clauses without a who list are
// limited by umask.
func (changes Changes) Adjust(oldMode uint32, dir bool, umask uint32) (mode, modeBits uint32) {
	mode = oldMode & allBits

	for _, c := range changes {
		affected := c.affected
		var omit uint32
		if dir {
			omit = (fsutil.SetUID | fsutil.SetGID) &^ c.mentioned
		}
		value := c.value

		switch c.flag {
		case ordinary:
		case copyExisting:
			value &= mode
			var spread uint32
			if value&fsutil.AllRead != 0 {
				spread |= fsutil.AllRead
			}
			if value&fsutil.AllWrite != 0 {
				spread |= fsutil.AllWrite
			}
			if value&fsutil.AllExecute != 0 {
				spread |= fsutil.AllExecute
			}
			value |= spread
		case xIfAnyX:
			if mode&fsutil.AllExecute != 0 || dir {
				value |= fsutil.AllExecute
			}
		}

		limit := ^umask
		if affected != 0 {
			limit = affected
		}
		value &= limit &^ omit

		switch c.op {
		case '=':
			var preserved uint32
			if affected != 0 {
				preserved = ^affected
			}
			preserved |= omit
			modeBits |= allBits &^ preserved
			mode = mode&preserved | value
		case '+':
			modeBits |= value
			mode |= value
		case '-':
			modeBits |= value
			mode &^= value
		}
	}
	return mode, modeBits
}
