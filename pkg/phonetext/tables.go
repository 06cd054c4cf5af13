package phonetext

// digitMappings maps every recognised digit glyph to its canonical ASCII
// digit: ASCII, fullwidth (U+FF10..U+FF19), Arabic-Indic (U+0660..U+0669)
// and Eastern Arabic-Indic (U+06F0..U+06F9). Each script's n-th glyph maps
// to the ASCII digit with the same numeric value.
var digitMappings = map[rune]rune{
	'0': '0', '1': '1', '2': '2', '3': '3', '4': '4',
	'5': '5', '6': '6', '7': '7', '8': '8', '9': '9',
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

// alphaMappings maps uppercase A-Z to digits using the classic 12-key
// telephone keypad assignment. Callers uppercase before lookup.
var alphaMappings = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// alphaPhoneMappings is the union of both tables. The domains are disjoint
// (letters vs. numeral glyphs); mergeMappings enforces that at init.
var alphaPhoneMappings = mergeMappings(digitMappings, alphaMappings)

func mergeMappings(tables ...map[rune]rune) map[rune]rune {
	merged := make(map[rune]rune)
	for _, table := range tables {
		for k, v := range table {
			if prev, dup := merged[k]; dup && prev != v {
				panic("phonetext: conflicting mapping table entries")
			}
			merged[k] = v
		}
	}
	return merged
}

// KeypadDigit returns the keypad digit for a letter, case-insensitively.
// The second return is false for anything outside A-Z/a-z.
func KeypadDigit(r rune) (rune, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	d, ok := alphaMappings[r]
	return d, ok
}

// CanonicalDigit returns the ASCII digit for any recognised digit glyph.
func CanonicalDigit(r rune) (rune, bool) {
	d, ok := digitMappings[r]
	return d, ok
}
