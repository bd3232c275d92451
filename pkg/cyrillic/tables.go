package cyrillic

import (
	"maps"
	"unicode/utf8"
)

// MappingTable maps a source character (or short source sequence) to its
// ASCII replacement. An empty replacement deletes the source.
type MappingTable map[string]string

// passport2013 is the ICAO Doc 9303 romanization used in Russian passports since 2013.
var passport2013 = MappingTable{
	"А": "A", "а": "a",
	"Б": "B", "б": "b",
	"В": "V", "в": "v",
	"Г": "G", "г": "g",
	"Д": "D", "д": "d",
	"Е": "E", "е": "e",
	"Ё": "E", "ё": "e",
	"Ж": "Zh", "ж": "zh",
	"З": "Z", "з": "z",
	"И": "I", "и": "i",
	"Й": "I", "й": "i",
	"К": "K", "к": "k",
	"Л": "L", "л": "l",
	"М": "M", "м": "m",
	"Н": "N", "н": "n",
	"О": "O", "о": "o",
	"П": "P", "п": "p",
	"Р": "R", "р": "r",
	"С": "S", "с": "s",
	"Т": "T", "т": "t",
	"У": "U", "у": "u",
	"Ф": "F", "ф": "f",
	"Х": "Kh", "х": "kh",
	"Ц": "Ts", "ц": "ts",
	"Ч": "Ch", "ч": "ch",
	"Ш": "Sh", "ш": "sh",
	"Щ": "Shch", "щ": "shch",
	"Ъ": "Ie", "ъ": "ie",
	"Ы": "Y", "ы": "y",
	"Ь": "", "ь": "",
	"Э": "E", "э": "e",
	"Ю": "Iu", "ю": "iu",
	"Я": "Ia", "я": "ia",
}

// bgnPCGN is the BGN/PCGN romanization. The hard and soft signs map to the
// ASCII stand-ins of the double and single prime.
// Context rules (ye/yë after vowels and at word start) are not applied.
var bgnPCGN = MappingTable{
	"А": "A", "а": "a",
	"Б": "B", "б": "b",
	"В": "V", "в": "v",
	"Г": "G", "г": "g",
	"Д": "D", "д": "d",
	"Е": "E", "е": "e",
	"Ё": "E", "ё": "e",
	"Ж": "Zh", "ж": "zh",
	"З": "Z", "з": "z",
	"И": "I", "и": "i",
	"Й": "Y", "й": "y",
	"К": "K", "к": "k",
	"Л": "L", "л": "l",
	"М": "M", "м": "m",
	"Н": "N", "н": "n",
	"О": "O", "о": "o",
	"П": "P", "п": "p",
	"Р": "R", "р": "r",
	"С": "S", "с": "s",
	"Т": "T", "т": "t",
	"У": "U", "у": "u",
	"Ф": "F", "ф": "f",
	"Х": "Kh", "х": "kh",
	"Ц": "Ts", "ц": "ts",
	"Ч": "Ch", "ч": "ch",
	"Ш": "Sh", "ш": "sh",
	"Щ": "Shch", "щ": "shch",
	"Ъ": `"`, "ъ": `"`,
	"Ы": "Y", "ы": "y",
	"Ь": "'", "ь": "'",
	"Э": "E", "э": "e",
	"Ю": "Yu", "ю": "yu",
	"Я": "Ya", "я": "ya",
}

// iso9 is GOST 7.79 System B. Where a letter differs between languages the
// Russian value is used.
var iso9 = MappingTable{
	"А": "A", "а": "a",
	"Б": "B", "б": "b",
	"В": "V", "в": "v",
	"Г": "G", "г": "g",
	"Ѓ": "G`", "ѓ": "g`", // Macedonian
	"Ґ": "G`", "ґ": "g`", // Ukrainian
	"Д": "D", "д": "d",
	"Е": "E", "е": "e",
	"Ё": "Yo", "ё": "yo",
	"Є": "Ye", "є": "ye", // Ukrainian
	"Ж": "Zh", "ж": "zh",
	"З": "Z", "з": "z",
	"Ѕ": "Z`", "ѕ": "z`", // Macedonian
	"И": "I", "и": "i",
	"Й": "Y", "й": "y",
	"Ј": "J", "ј": "j", // Macedonian
	"І": "I", "і": "i",
	"Ї": "Yi", "ї": "yi", // Ukrainian
	"К": "K", "к": "k",
	"Ќ": "K`", "ќ": "k`", // Macedonian
	"Л": "L", "л": "l",
	"Љ": "L`", "љ": "l`", // Macedonian
	"М": "M", "м": "m",
	"Н": "N", "н": "n",
	"Њ": "N`", "њ": "n`", // Macedonian
	"О": "O", "о": "o",
	"П": "P", "п": "p",
	"Р": "R", "р": "r",
	"С": "S", "с": "s",
	"Т": "T", "т": "t",
	"У": "U", "у": "u",
	"Ў": "U`", "ў": "u`", // Belarusian
	"Ф": "F", "ф": "f",
	"Х": "X", "х": "x",
	"Ц": "Cz", "ц": "cz",
	"Ч": "Ch", "ч": "ch",
	"Џ": "Dh", "џ": "dh", // Macedonian
	"Ш": "Sh", "ш": "sh",
	"Щ": "Shh", "щ": "shh",
	"Ъ": "``", "ъ": "``",
	"Ы": "Y`", "ы": "y`",
	"Ь": "`", "ь": "`",
	"Э": "E`", "э": "e`",
	"Ю": "Yu", "ю": "yu",
	"Я": "Ya", "я": "ya",
	"Ѣ": "Ye", "ѣ": "ye", // pre-1918 orthography
	"Ѳ": "Fh", "ѳ": "fh",
	"Ѵ": "Yh", "ѵ": "yh",
	"Ѫ": "O`", "ѫ": "o`", // Old Bulgarian
	"’": "'",
	"№": "#",
}

// compiledTable is a MappingTable with the key length bound precomputed
// for longest-match scanning.
type compiledTable struct {
	entries   MappingTable
	maxKeyLen int  // in bytes
	asciiKeys bool // true if any key starts with an ASCII byte
}

func compile(m MappingTable) *compiledTable {
	t := &compiledTable{entries: m}
	for k := range m {
		if k == "" {
			continue
		}
		t.maxKeyLen = max(t.maxKeyLen, len(k))
		if k[0] < utf8.RuneSelf {
			t.asciiKeys = true
		}
	}
	return t
}

var tables = map[System]*compiledTable{
	Passport2013: compile(passport2013),
	BGNPCGN:      compile(bgnPCGN),
	ISO9:         compile(iso9),
}

// Table returns a copy of the mapping table registered for s.
// The boolean is false when s has no table.
func Table(s System) (MappingTable, bool) {
	t, ok := tables[s]
	if !ok {
		return nil, false
	}
	return maps.Clone(t.entries), true
}
