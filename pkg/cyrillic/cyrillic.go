package cyrillic

import (
	"strings"
	"unicode/utf8"
)

// Config selects the conversion strategy.
type Config struct {
	// System selects the mapping table. Unknown systems leave input unchanged.
	System System `env:"TRANSLITERATION_SYSTEM" envDefault:"passport2013" yaml:"transliteration_system"`
	// UseIconv delegates conversion to the ASCII folder instead of the table.
	// Ignored when no folder is available.
	UseIconv bool `env:"TRANSLIT_USE_ICONV" envDefault:"false" yaml:"use_iconv"`
}

// DefaultConfig returns passport2013 with table-based conversion.
func DefaultConfig() Config {
	return Config{System: DefaultSystem}
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithFolder replaces the ASCII folder used when Config.UseIconv is set.
// Passing nil marks the folder as unavailable, so the table is always used.
func WithFolder(f Folder) Option {
	return func(t *Transliterator) {
		t.folder = f
	}
}

// Transliterator converts Cyrillic text to ASCII.
// It is immutable after New and safe for concurrent use.
type Transliterator struct {
	folder Folder
	table  *compiledTable
	system System
	fold   bool
}

// New creates a Transliterator for cfg.
//
// Example:
//
//	tr := cyrillic.New(cyrillic.Config{System: cyrillic.ISO9})
//	tr.ToASCII("Щука") // "Shhuka"
func New(cfg Config, opts ...Option) *Transliterator {
	system := cfg.System
	if system == "" {
		system = DefaultSystem
	}

	t := &Transliterator{
		system: system,
		table:  tables[system],
		folder: defaultFolder,
	}
	for _, opt := range opts {
		opt(t)
	}

	// Resolve the folder capability once.
	t.fold = cfg.UseIconv && t.folder != nil

	return t
}

// System returns the configured system, which may be unknown.
func (t *Transliterator) System() System {
	return t.system
}

// UsesFolder reports whether ToASCII delegates to the ASCII folder.
func (t *Transliterator) UsesFolder() bool {
	return t.fold
}

// ToASCII converts source to its ASCII approximation.
// It never fails: characters without a mapping are copied unchanged, and an
// unknown system returns source verbatim.
func (t *Transliterator) ToASCII(source string) string {
	if t.fold {
		return t.folder.Fold(source)
	}
	return t.Replace(source)
}

// Replace applies table substitution regardless of the folder setting.
func (t *Transliterator) Replace(source string) string {
	if t.table == nil || source == "" {
		return source
	}
	return replace(t.table, source)
}

// replace scans source left to right, substituting the longest key that
// matches at each position.
func replace(tbl *compiledTable, source string) string {
	var b strings.Builder
	b.Grow(len(source) + len(source)/2)

	for i := 0; i < len(source); {
		c := source[i]
		if c < utf8.RuneSelf && !tbl.asciiKeys {
			b.WriteByte(c)
			i++
			continue
		}

		if n, val, ok := tbl.match(source[i:]); ok {
			b.WriteString(val)
			i += n
			continue
		}

		// Copy one rune, or one byte of invalid UTF-8, unchanged.
		_, size := utf8.DecodeRuneInString(source[i:])
		b.WriteString(source[i : i+size])
		i += size
	}

	return b.String()
}

// match returns the longest key that prefixes s.
func (tbl *compiledTable) match(s string) (int, string, bool) {
	for n := min(tbl.maxKeyLen, len(s)); n > 0; n-- {
		if val, ok := tbl.entries[s[:n]]; ok {
			return n, val, true
		}
	}
	return 0, "", false
}

var (
	defaultFolder Folder = NewASCIIFolder()
	std                  = New(DefaultConfig())
)

// ToASCII converts source with the default passport2013 table.
func ToASCII(source string) string {
	return std.ToASCII(source)
}
