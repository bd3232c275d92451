package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/translit/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Привет</p><script>alert('xss')</script>`,
			expected: "Привет",
		},
		{
			name:     "strips nested tags",
			input:    `<div><p>Новости <span>дня</span></p></div>`,
			expected: "Новости дня",
		},
		{
			name:     "keeps link text",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "decodes entities",
			input:    `Tom &amp; Jerry &quot;live&quot;`,
			expected: `Tom & Jerry "live"`,
		},
		{
			name:     "strips event handler elements",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "Съешь же ещё",
			expected: "Съешь же ещё",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims", "  Привет  ", "Привет"},
		{"collapses runs", "a \t\n b", "a b"},
		{"no-break space", "a\u00a0b", "a b"},
		{"only space", " \n\t ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.CollapseSpace(tt.input))
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	got := sanitizer.Title("<p>Москва&nbsp;&amp;\n<b>Петербург</b></p>")
	assert.Equal(t, "Москва & Петербург", got)
}
