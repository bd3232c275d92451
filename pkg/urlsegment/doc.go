// Package urlsegment derives URL segments for content records from their titles.
//
// It is the glue a content system calls when a title changes: markup is
// stripped, Cyrillic is transliterated with a table, the text is filtered
// by the slug package, and records whose titles produce nothing usable get a
// generated name such as "page-42".
//
//	gen := urlsegment.New(cyrillic.New(cyrillic.DefaultConfig()))
//	gen.Generate(ctx, 42, "Привет, мир") // "privet-mir"
//	gen.Generate(ctx, 42, "北京")         // "page-42"
package urlsegment
