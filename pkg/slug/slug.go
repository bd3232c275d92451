package slug

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose under NFKD.
var foldExtra = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
}

// Make converts s into a URL segment.
//
// The pipeline is: strip characters, apply replacements, transliterate,
// fold Latin diacritics, then keep ASCII letters and digits. Whitespace and
// the characters + _ . / ? = # : - become separators; everything else is
// removed. Runs of separators collapse and leading or trailing ones are trimmed.
func Make(s string, opts ...Option) string {
	o := newOptions(opts...)

	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	if len(o.replace) > 0 {
		s = replacer(o.replace).Replace(s)
	}

	if o.translit != nil {
		s = o.translit.ToASCII(s)
	}

	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false

	for _, r := range s {
		switch {
		case isAlnum(r):
			if pending && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pending = false
			if o.lowercase {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		case isSeparator(r):
			pending = true
		}
	}

	result := b.String()
	if o.maxLength > 0 {
		result = truncate(result, o.maxLength, o.separator)
	}
	return result
}

// replacer builds a strings.Replacer that tries longer keys first.
func replacer(m map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, m[k])
	}
	return strings.NewReplacer(pairs...)
}

// fold maps Latin letters with diacritics to their ASCII base.
func fold(s string) string {
	if isASCII(s) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if v, ok := foldExtra[r]; ok {
			b.WriteString(v)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}

// truncate cuts s to n characters and trims a dangling separator,
// including a partial one left by a multi-character separator.
func truncate(s string, n int, sep string) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	s = string(rs[:n])

	if sep == "" {
		return s
	}
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	sr := []rune(sep)
	for i := len(sr) - 1; i > 0; i-- {
		if p := string(sr[:i]); strings.HasSuffix(s, p) {
			return strings.TrimSuffix(s, p)
		}
	}
	return s
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '+', '_', '.', '/', '?', '=', '#', ':', '-':
		return true
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
