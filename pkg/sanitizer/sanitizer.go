package sanitizer

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

// StripHTML removes every tag, including script and style bodies, and
// decodes entities so "&amp;" reads as "&" again.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// CollapseSpace trims s and replaces every run of Unicode white space
// (including no-break space) with a single ASCII space.
func CollapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Title prepares a record title for segment generation: markup is removed
// and white space normalized.
func Title(s string) string {
	return CollapseSpace(StripHTML(s))
}
