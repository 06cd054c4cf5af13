package phonetext

import (
	"strings"
	"unicode"
)

// rewrite maps every character of text through a mapping table, uppercasing
// for lookup. Unmapped characters are dropped when removeNonMatches is set
// and kept verbatim otherwise.
func rewrite(text string, mappings map[rune]rune, removeNonMatches bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if d, ok := mappings[unicode.ToUpper(r)]; ok {
			b.WriteRune(d)
		} else if !removeNonMatches {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize is the general-purpose entry point used before structural
// parsing. If the text looks like a vanity number (three or more letters)
// the keypad letters are translated to digits; either way everything that
// is not a recognised digit is stripped.
func Normalize(text string) string {
	if validAlphaPhonePattern.MatchString(text) {
		return rewrite(text, alphaPhoneMappings, true)
	}
	return NormalizeDigitsOnly(text)
}

// NormalizeDigitsOnly keeps only recognised digits of any supported script,
// converted to canonical ASCII; letters and punctuation are dropped.
func NormalizeDigitsOnly(text string) string {
	return rewrite(text, digitMappings, true)
}

// ConvertAlphaCharactersInNumber translates keypad letters and digit-script
// variants to canonical digits but keeps punctuation and anything
// unrecognised unchanged, yielding a dial-pad-translated display string.
func ConvertAlphaCharactersInNumber(text string) string {
	return rewrite(text, alphaPhoneMappings, false)
}
