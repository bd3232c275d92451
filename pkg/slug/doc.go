// Package slug turns titles into URL segments.
//
// Make keeps ASCII letters and digits, turns whitespace and URL punctuation
// into a separator, removes everything else, collapses repeated separators
// and lowercases the result. Non-Latin scripts are removed unless a
// transliterator is configured.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/translit/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Fish & Chips")
//	// Output: "fish-and-chips"
//
// With a transliterator:
//
//	tr := cyrillic.New(cyrillic.DefaultConfig())
//	s = slug.Make("Привет, мир", slug.Transliterate(tr))
//	// Output: "privet-mir"
//
// # Configuration Options
//
// MaxLength limits the slug length:
//
//	slug.Make("Very long title", slug.MaxLength(9))
//	// Output: "very-long"
//
// Separator sets the string used between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// StripChars removes specific characters before processing:
//
//	slug.Make("Price: $100", slug.StripChars("$:"))
//	// Output: "price-100"
//
// CustomReplace applies string replacements before transliteration:
//
//	slug.Make("C++ @ Home", slug.CustomReplace(map[string]string{"C++": "cpp", "@": " at "}))
//	// Output: "cpp-at-home"
//
// # Diacritics
//
// Accented Latin letters are folded to their base letter:
//
//	slug.Make("Crème brûlée")  // "creme-brulee"
//	slug.Make("Straße Øresund") // "strasse-oresund"
package slug
