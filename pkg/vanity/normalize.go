package vanity

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/metaconomy/phone-number/pkg/phonetext"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldASCII strips accents so that wordlists in accented languages still
// land on the A-Z keypad (e.g. ÉLODIE -> ELODIE).
func FoldASCII(s string) string {
	result, _, _ := transform.String(stripAccents, s)
	return result
}

// EncodeKeypad derives the telephone-keypad digit string for a word
// (FLOWERS -> 3569377). Accents are folded first; a word with any
// character that still doesn't land on the keypad encodes to false.
func EncodeKeypad(word string) (string, bool) {
	folded := FoldASCII(word)
	digits := make([]rune, 0, len(folded))
	for _, r := range folded {
		d, ok := phonetext.KeypadDigit(r)
		if !ok {
			return "", false
		}
		digits = append(digits, d)
	}
	if len(digits) == 0 {
		return "", false
	}
	return string(digits), true
}
