package cyrillic

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder converts arbitrary text to ASCII without a lookup table.
// Characters that have no ASCII form are dropped.
type Folder interface {
	Fold(s string) string
}

// FolderFunc adapts a plain function to the Folder interface.
type FolderFunc func(string) string

func (f FolderFunc) Fold(s string) string { return f(s) }

// ASCIIFolder decomposes text (NFKD), removes combining marks and drops
// every rune that is still outside ASCII. "Crème brûlée" becomes
// "Creme brulee"; Cyrillic letters are removed.
type ASCIIFolder struct {
	pool sync.Pool
}

// NewASCIIFolder creates a folder backed by golang.org/x/text.
func NewASCIIFolder() *ASCIIFolder {
	return &ASCIIFolder{
		pool: sync.Pool{
			New: func() any {
				return transform.Chain(
					norm.NFKD,
					runes.Remove(runes.In(unicode.Mn)),
					runes.Remove(runes.Predicate(isNonASCII)),
				)
			},
		},
	}
}

// Fold implements Folder.
func (f *ASCIIFolder) Fold(s string) string {
	if isASCII(s) {
		return s
	}

	// transform.Chain keeps state, so each call needs its own transformer.
	t := f.pool.Get().(transform.Transformer)
	defer f.pool.Put(t)
	t.Reset()

	out, _, err := transform.String(t, s)
	if err != nil {
		// Only ill-formed input can fail here; fall back to a plain filter.
		return dropNonASCII(s)
	}
	return out
}

func isNonASCII(r rune) bool {
	return r >= utf8.RuneSelf
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func dropNonASCII(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

var _ Folder = (*ASCIIFolder)(nil)
