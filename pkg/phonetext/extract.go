package phonetext

import "unicode/utf8"

// ExtractPossibleNumber strips leading and trailing noise from text so that
// viability checking and normalization see only the number-like core. It
// returns the empty string when nothing number-like is present, and never
// fails.
func ExtractPossibleNumber(text string) string {
	start := validStartCharPattern.FindStringIndex(text)
	if start == nil {
		return ""
	}
	number := text[start[0]:]

	// Trim a trailing run of characters that can't end a number. "#" stays:
	// it may terminate an extension.
	if trail := unwantedEndCharPattern.FindStringIndex(number); trail != nil {
		number = number[:trail[0]]
	}

	// If a second number is concatenated onto this one (e.g. two
	// extensions appended to one base), keep only the first.
	if second := secondNumberStartPattern.FindStringIndex(number); second != nil {
		number = number[:second[0]]
	}
	return number
}

// IsViablePhoneNumber reports whether text has the shape of a phone number:
// long enough to be a national significant number anywhere, and a full
// match of the viable-phone-number grammar (with an optional extension
// suffix). It judges textual shape only, never dialability.
func IsViablePhoneNumber(text string) bool {
	if utf8.RuneCountInString(text) < MinLengthNSN {
		return false
	}
	return validPhoneNumberPattern.MatchString(text)
}

// MaybeStripExtension splits a candidate into its main number and extension
// digits. When number carries a recognised extension suffix and the part
// before it is still a viable number, it returns that part and the captured
// digits; otherwise it returns number unchanged and "".
func MaybeStripExtension(number string) (string, string) {
	loc := knownExtnPattern.FindStringSubmatchIndex(number)
	if loc == nil || !IsViablePhoneNumber(number[:loc[0]]) {
		return number, ""
	}
	// One capturing group per alternative; the first that matched holds
	// the extension digits.
	for g := 1; 2*g+1 < len(loc); g++ {
		if loc[2*g] >= 0 {
			return number[:loc[0]], number[loc[2*g]:loc[2*g+1]]
		}
	}
	return number, ""
}
