package multibyte

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cperrin88/mkdirtools/internal/logger"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Conversion results that are not a byte count, as returned by mbrtowc.
const (
	InvalidSequence    = -1
	IncompleteSequence = -2
)

// ucs2Max is the largest code point a 16-bit wide character can hold.
const ucs2Max = 0xFFFF

type sample struct {
	utf8 string
	ucs4 rune
}

var samples = []sample{
	{"r", 0x0072},                // LATIN SMALL LETTER R
	{"\xCE\xB1", 0x03B1},         // GREEK SMALL LETTER ALPHA
	{"\xEA\x9D\xA4", 0xA764},     // LATIN CAPITAL LETTER THORN WITH STROKE
	{"\xEF\xB9\xAA", 0xFE6A},     // SMALL PERCENT SIGN
	{"\xF0\x90\x8C\xBB", 0x1033B}, // GOTHIC LETTER LAGUS
	{"\xF0\x9F\x82\xB1", 0x1F0B1}, // PLAYING CARD ACE OF HEARTS
}

// glibc spells several codesets differently from the IANA registry.
var codesetAliases = map[string]string{
	"utf8":      "UTF-8",
	"iso88591":  "ISO-8859-1",
	"iso88592":  "ISO-8859-2",
	"iso88595":  "ISO-8859-5",
	"iso88597":  "ISO-8859-7",
	"iso885915": "ISO-8859-15",
	"koi8r":     "KOI8-R",
	"koi8u":     "KOI8-U",
	"eucjp":     "EUC-JP",
	"euckr":     "EUC-KR",
	"sjis":      "Shift_JIS",
	"gbk":       "GBK",
	"gb2312":    "GB2312",
	"gb18030":   "GB18030",
	"big5":      "Big5",
	"cp1251":    "windows-1251",
	"cp1252":    "windows-1252",
}

// Check is the conversion of one sample.
type Check struct {
	Sample   []byte `json:"-" yaml:"-"`
	Want     rune   `json:"-" yaml:"-"`
	Got      rune   `json:"-" yaml:"-"`
	Input    string `json:"input" yaml:"input"`
	Expected string `json:"expected" yaml:"expected"`
	Decoded  string `json:"decoded,omitempty" yaml:"decoded,omitempty"`
	// Consumed is the number of bytes the first character took, or
	// InvalidSequence or IncompleteSequence.
	Consumed int  `json:"consumed" yaml:"consumed"`
	Match    bool `json:"match" yaml:"match"`
}

// Converted reports whether a character was decoded at all.
func (c Check) Converted() bool {
	return c.Consumed > 0
}

// Probe converts the samples with the decoder of one locale.
type Probe struct {
	locale   Locale
	enc      encoding.Encoding
	encName  string
	fallback bool
}

// NewProbe builds a probe for loc. The C and POSIX locales, locales without
// a codeset and codesets x/text does not know decode one byte per character
// as ISO-8859-1.
func NewProbe(loc Locale) *Probe {
	p := &Probe{locale: loc}
	if !loc.IsPortable() && loc.Codeset != "" {
		p.enc, p.encName = lookupEncoding(loc.Codeset)
	}
	if p.enc == nil {
		if !loc.IsPortable() && loc.Codeset != "" {
			logger.Debug("unknown codeset, decoding bytes as ISO-8859-1", logger.Fields{"codeset": loc.Codeset})
		}
		p.enc, p.encName, p.fallback = charmap.ISO8859_1, "ISO-8859-1", true
	}
	return p
}

func lookupEncoding(codeset string) (encoding.Encoding, string) {
	candidates := []string{codeset}
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(codeset))
	if alias, ok := codesetAliases[key]; ok {
		candidates = append(candidates, alias)
	}
	for _, name := range candidates {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			continue
		}
		return enc, encodingName(enc, name)
	}
	return nil, ""
}

// encodingName prefers the MIME name, which is the spelling locales use.
func encodingName(enc encoding.Encoding, fallback string) string {
	for _, index := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if name, err := index.Name(enc); err == nil && name != "" {
			return name
		}
	}
	return fallback
}

// Locale returns the probed locale.
func (p *Probe) Locale() Locale {
	return p.locale
}

// EncodingName returns the IANA name of the decoder in use.
func (p *Probe) EncodingName() string {
	return p.encName
}

// UsesFallback reports whether the codeset was unknown and bytes are
// decoded as ISO-8859-1.
func (p *Probe) UsesFallback() bool {
	return p.fallback && !p.locale.IsPortable() && p.locale.Codeset != ""
}

// UseMultibyte reports whether a character of the codeset can take more
// than one byte.
func (p *Probe) UseMultibyte() bool {
	_, singleByte := p.enc.(*charmap.Charmap)
	return !singleByte
}

// IsUTF8LocaleName reports whether the locale name ends in a UTF-8 codeset.
func (p *Probe) IsUTF8LocaleName() bool {
	return p.locale.IsUTF8Name()
}

// IsUTF8WcharUCS2 reports whether every sample in the basic multilingual
// plane decodes to its code point.
func (p *Probe) IsUTF8WcharUCS2() bool {
	return p.allMatch(false)
}

// IsUTF8WcharUCS4 reports whether every sample, including those beyond the
// basic multilingual plane, decodes to its code point.
func (p *Probe) IsUTF8WcharUCS4() bool {
	return p.allMatch(true)
}

func (p *Probe) allMatch(ucs4 bool) bool {
	ok := true
	for _, c := range p.Checks() {
		if ucs4 || c.Want <= ucs2Max {
			ok = ok && c.Match
		}
	}
	return ok
}

// Checks converts every sample.
func (p *Probe) Checks() []Check {
	checks := make([]Check, 0, len(samples))
	for _, s := range samples {
		checks = append(checks, p.check(s))
	}
	return checks
}

func (p *Probe) check(s sample) Check {
	c := Check{
		Sample:   []byte(s.utf8),
		Want:     s.ucs4,
		Input:    hexBytes(s.utf8),
		Expected: fmt.Sprintf("U+%04X", s.ucs4),
	}
	c.Got, c.Consumed = p.convert(c.Sample)
	if c.Converted() {
		c.Decoded = fmt.Sprintf("U+%04X", c.Got)
		c.Match = c.Consumed == len(c.Sample) && c.Got == c.Want
	}
	return c
}

// convert decodes the first character of src, feeding the decoder one more
// byte at a time until it produces output.
func (p *Probe) convert(src []byte) (rune, int) {
	dec := p.enc.NewDecoder()
	dst := make([]byte, 8*utf8.UTFMax)
	for n := 1; n <= len(src); n++ {
		dec.Reset()
		nDst, _, err := dec.Transform(dst, src[:n], false)
		if errors.Is(err, transform.ErrShortSrc) {
			continue
		}
		if nDst == 0 {
			if err != nil {
				return 0, InvalidSequence
			}
			continue
		}
		r, _ := utf8.DecodeRune(dst[:nDst])
		if r == utf8.RuneError {
			return 0, InvalidSequence
		}
		return r, n
	}
	return 0, IncompleteSequence
}

// WriteDebug prints one line per sample describing its conversion.
func (p *Probe) WriteDebug(w io.Writer) error {
	for _, c := range p.Checks() {
		if _, err := io.WriteString(w, debugLine(c)); err != nil {
			return err
		}
	}
	return nil
}

func debugLine(c Check) string {
	var b strings.Builder
	b.WriteString("mbstr( ")
	for _, x := range c.Sample {
		fmt.Fprintf(&b, "\\x%02x ", x)
	}
	b.WriteString(") ")

	if !c.Converted() {
		// Byte counts print as size_t, so the failure markers wrap around.
		fmt.Fprintf(&b, "failed conversion, n=%d (expected U+%04x)\n", uint64(c.Consumed), c.Want)
		return b.String()
	}
	fmt.Fprintf(&b, "= wchar_t ( 0x%04x ) ", c.Got)
	if c.Match {
		b.WriteString("- as expected\n")
	} else {
		fmt.Fprintf(&b, " - mismatch, n=%d (expected U+%04x)\n", c.Consumed, c.Want)
	}
	return b.String()
}

func hexBytes(s string) string {
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = fmt.Sprintf("\\x%02x", s[i])
	}
	return strings.Join(parts, " ")
}
