package cyrillic

import (
	"fmt"
	"slices"
	"strings"
)

// System names a transliteration table.
type System string

const (
	// Passport2013 follows the Russian international passport (ICAO, 2013) romanization.
	Passport2013 System = "passport2013"
	// BGNPCGN follows the BGN/PCGN romanization of Russian.
	BGNPCGN System = "bgn_pcgn"
	// ISO9 follows ISO 9:1995 / GOST 7.79 System B, including extended Slavic letters.
	ISO9 System = "iso9"

	// DefaultSystem is used when no system is configured.
	DefaultSystem = Passport2013
)

func (s System) String() string {
	return string(s)
}

// Valid reports whether a table is registered for s.
func (s System) Valid() bool {
	_, ok := tables[s]
	return ok
}

// Systems returns all registered systems sorted by name.
func Systems() []System {
	out := make([]System, 0, len(tables))
	for s := range tables {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// ParseSystem resolves a system name. Matching ignores case and surrounding spaces.
// An empty name resolves to DefaultSystem.
func ParseSystem(name string) (System, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSystem, nil
	}
	s := System(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return s, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names are kept as-is: a transliterator configured with an
// unknown system returns its input unchanged.
func (s *System) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "" {
		*s = DefaultSystem
		return nil
	}
	*s = System(name)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s), nil
}
