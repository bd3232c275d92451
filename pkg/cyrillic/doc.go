// Package cyrillic converts Cyrillic text into a 7-bit ASCII approximation.
//
// The conversion is a lossy, one-way romanization meant for URL segments and
// other identifiers. Each transliteration system is a static lookup table:
//
//   - passport2013: Russian international passports and ICAO machine-readable zones (default)
//   - bgn_pcgn: US/UK geographic naming boards
//   - iso9: ISO 9:1995 / GOST 7.79 System B, including Ukrainian, Belarusian,
//     Macedonian and pre-reform letters
//
// Basic usage:
//
//	cyrillic.ToASCII("Москва") // "Moskva"
//
//	tr := cyrillic.New(cyrillic.Config{System: cyrillic.BGNPCGN})
//	tr.ToASCII("Юрий") // "Yuriy"
//
// # Fallbacks
//
// Conversion never fails. Characters missing from the table pass through
// unchanged, and a Transliterator configured with an unknown system returns its
// input verbatim.
//
// # ASCII folding
//
// With Config.UseIconv set, ToASCII skips the tables and delegates to a Folder,
// which decomposes accented Latin letters and drops anything without an ASCII
// form. The default folder is built on golang.org/x/text. Use WithFolder(nil)
// to disable folding entirely.
package cyrillic
