package cyrillic

import "errors"

// ErrUnknownSystem is returned by ParseSystem for names without a registered table.
// Conversion never returns it: unknown systems degrade to identity.
var ErrUnknownSystem = errors.New("cyrillic: unknown transliteration system")
