package slug

// Transliterator converts text to ASCII before filtering.
// *cyrillic.Transliterator satisfies it.
type Transliterator interface {
	ToASCII(s string) string
}

// Option configures Make.
type Option func(*options)

type options struct {
	translit   Transliterator
	replace    map[string]string
	separator  string
	stripChars string
	maxLength  int
	lowercase  bool
}

// defaultReplacements run before transliteration.
var defaultReplacements = map[string]string{
	"&amp;": " and ",
	"&":     " and ",
}

func newOptions(opts ...Option) *options {
	o := &options{
		separator: "-",
		lowercase: true,
		replace:   defaultReplacements,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Separator sets the string placed between words. Defaults to "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case conversion. Defaults to true.
func Lowercase(lower bool) Option {
	return func(o *options) {
		o.lowercase = lower
	}
}

// MaxLength truncates the result to n characters. Zero or negative means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// StripChars removes every character of chars before any other processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace adds string replacements applied before transliteration.
// Entries override the default "&" handling when keys collide.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		merged := make(map[string]string, len(o.replace)+len(replacements))
		for k, v := range o.replace {
			merged[k] = v
		}
		for k, v := range replacements {
			if k != "" {
				merged[k] = v
			}
		}
		o.replace = merged
	}
}

// Transliterate converts text with t before filtering, so that non-Latin
// scripts survive as ASCII instead of being removed.
func Transliterate(t Transliterator) Option {
	return func(o *options) {
		o.translit = t
	}
}
