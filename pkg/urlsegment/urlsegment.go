package urlsegment

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/translit/pkg/logger"
	"github.com/dmitrymomot/translit/pkg/sanitizer"
	"github.com/dmitrymomot/translit/pkg/slug"
)

// DefaultFallbackPrefix names records whose title yields no usable segment.
const DefaultFallbackPrefix = "page"

// Transliterator converts text using a lookup table only.
// *cyrillic.Transliterator satisfies it through its Replace method.
type Transliterator interface {
	Replace(source string) string
}

// Option configures a Generator.
type Option func(*Generator)

// WithFallbackPrefix sets the prefix of generated fallback segments ("<prefix>-<id>").
func WithFallbackPrefix(prefix string) Option {
	return func(g *Generator) {
		if prefix != "" {
			g.fallbackPrefix = prefix
		}
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSlugOptions passes extra options (length limits, separator) to slug.Make.
func WithSlugOptions(opts ...slug.Option) Option {
	return func(g *Generator) {
		g.slugOpts = append(g.slugOpts, opts...)
	}
}

// Generator derives URL segments from record titles.
// It is safe for concurrent use.
type Generator struct {
	translit       Transliterator
	logger         *slog.Logger
	fallbackPrefix string
	slugOpts       []slug.Option
}

// New creates a Generator. Titles are always converted with tr's table,
// regardless of any ASCII folding configured on it, so Cyrillic letters
// survive as Latin instead of being dropped.
func New(tr Transliterator, opts ...Option) *Generator {
	g := &Generator{
		translit:       tr,
		logger:         logger.NewNope(),
		fallbackPrefix: DefaultFallbackPrefix,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the URL segment for a record title.
// When the title has no convertible characters the result is "<prefix>-<id>".
func (g *Generator) Generate(ctx context.Context, id int64, title string) string {
	text := sanitizer.Title(title)

	opts := g.slugOpts
	if g.translit != nil {
		opts = append([]slug.Option{slug.Transliterate(tableOnly{g.translit})}, g.slugOpts...)
	}
	segment := slug.Make(text, opts...)

	if isEmpty(segment) {
		fallback := g.Fallback(id)
		g.logger.DebugContext(ctx, "url segment fallback",
			slog.Int64("id", id),
			slog.String("title", title),
			slog.String("segment", fallback),
		)
		return fallback
	}
	return segment
}

// Update writes the generated segment for title into segment.
// It matches the shape of a title-change hook that receives the proposed
// segment by reference.
func (g *Generator) Update(ctx context.Context, segment *string, id int64, title string) {
	if segment == nil {
		return
	}
	*segment = g.Generate(ctx, id, title)
}

// Fallback returns the generated name for a record without a usable title.
func (g *Generator) Fallback(id int64) string {
	return g.fallbackPrefix + "-" + strconv.FormatInt(id, 10)
}

func isEmpty(segment string) bool {
	return segment == "" || segment == "-" || segment == "-1"
}

type tableOnly struct {
	t Transliterator
}

func (a tableOnly) ToASCII(s string) string { return a.t.Replace(s) }
