package multibyte

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// yamlIndent is the indentation of YAML reports.
const yamlIndent = 2

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", errutils.ErrInvalidOutputFormatWithDetails(s)
}

// Report is everything a probe found out about one locale.
type Report struct {
	Locale           string  `json:"locale" yaml:"locale"`
	Codeset          string  `json:"codeset,omitempty" yaml:"codeset,omitempty"`
	Encoding         string  `json:"encoding" yaml:"encoding"`
	Fallback         bool    `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	UseMultibyte     bool    `json:"use_multibyte" yaml:"use_multibyte"`
	IsUTF8LocaleName bool    `json:"is_utf8_locale_name" yaml:"is_utf8_locale_name"`
	IsUTF8WcharUCS2  bool    `json:"is_utf8_wchar_ucs2" yaml:"is_utf8_wchar_ucs2"`
	IsUTF8WcharUCS4  bool    `json:"is_utf8_wchar_ucs4" yaml:"is_utf8_wchar_ucs4"`
	Checks           []Check `json:"checks" yaml:"checks"`
}

// Report runs every check.
func (p *Probe) Report() Report {
	return Report{
		Locale:           p.locale.Name,
		Codeset:          p.locale.Codeset,
		Encoding:         p.encName,
		Fallback:         p.UsesFallback(),
		UseMultibyte:     p.UseMultibyte(),
		IsUTF8LocaleName: p.IsUTF8LocaleName(),
		IsUTF8WcharUCS2:  p.IsUTF8WcharUCS2(),
		IsUTF8WcharUCS4:  p.IsUTF8WcharUCS4(),
		Checks:           p.Checks(),
	}
}

// Write renders r in format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	default:
		return errutils.ErrInvalidOutputFormatWithDetails(string(format))
	}
}

func (r Report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "detected locale: %s\n", r.Locale)
	fmt.Fprintf(&b, "use_multibyte: %t\n", r.UseMultibyte)
	fmt.Fprintf(&b, "is_utf8_locale_name: %t\n", r.IsUTF8LocaleName)
	fmt.Fprintf(&b, "is_utf8_wchar_ucs2:  %t\n", r.IsUTF8WcharUCS2)
	fmt.Fprintf(&b, "is_utf8_wchar_ucs4:  %t\n", r.IsUTF8WcharUCS4)
	for _, c := range r.Checks {
		b.WriteString(debugLine(c))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
