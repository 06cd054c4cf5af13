package phonetext

import "regexp"

// Character classes the pattern library is assembled from. All assembly
// happens here, at init; no pattern is built per call.
const (
	// ASCII plus and its fullwidth form U+FF0B.
	plusChars = "+＋"

	// Every digit glyph digitMappings recognises, as regexp ranges:
	// ASCII, fullwidth, Arabic-Indic, Eastern Arabic-Indic.
	digitRanges = "0-9０-９٠-٩۰-۹"

	// Punctuation accepted inside a phone number: hyphens and dashes of
	// several scripts, spaces (incl. no-break and ideographic), brackets
	// in ASCII and fullwidth forms, dots, slashes and tildes. The letter x
	// appears because it doubles as an extension separator.
	validPunctuation = "-x‐-―−ー－-／" +
		"  ­​⁠　()（）［］" +
		".\\[\\]/~⁓∼～"

	validAlpha = "A-Za-z"
)

// extnPatterns matches a recognised extension suffix: a marker (ext, extn,
// extension, x, #, int, anexo, or a fullwidth equivalent) followed by up to
// seven canonical digits, or a bare separator-and-hash form with up to five
// digits before the hash. Exactly one capturing group per alternative
// carries the extension digits.
const extnPatterns = "[  \\t,]*" +
	"(?:extensi[oó]n|extn?|ｅ?ｘｔｎ?|[x#ｘ＃]|int|ｉｎｔ|anexo)" +
	"[:.．]?[  \\t,-]*(\\d{1,7})#?" +
	"|[- ]+(\\d{1,5})#"

var (
	// validStartCharPattern finds where a genuine number might begin: a
	// plus sign or any digit glyph.
	validStartCharPattern = regexp.MustCompile("[" + plusChars + digitRanges + "]")

	// unwantedEndCharPattern matches a trailing run of characters that are
	// neither letters nor digits. A trailing # is kept: it may terminate a
	// valid extension.
	unwantedEndCharPattern = regexp.MustCompile(`[^\p{N}\p{L}#]+$`)

	// secondNumberStartPattern marks the start of a second number
	// concatenated onto the first, e.g. "(530) 583-6985 x302/x2303".
	secondNumberStartPattern = regexp.MustCompile(`[\\/] *x`)

	// validAlphaPhonePattern is the heuristic for attempting alpha-to-digit
	// translation: at least three letters anywhere in the string.
	validAlphaPhonePattern = regexp.MustCompile(`(?:[^A-Za-z]*[A-Za-z]){3}`)

	// knownExtnPattern matches an extension suffix anchored at the end.
	knownExtnPattern = regexp.MustCompile("(?i)(?:" + extnPatterns + ")$")

	// validPhoneNumberPattern is the full shape grammar: optional leading
	// plus sign(s), at least three digit groups with optional punctuation
	// before each, a trailing run of punctuation/letters/digits, and an
	// optional extension suffix. The three-group floor is what separates
	// real numbers from short numeric noise.
	validPhoneNumberPattern = regexp.MustCompile("(?i)^[" + plusChars + "]*" +
		"(?:[" + validPunctuation + "]*[" + digitRanges + "]){3,}" +
		"[" + validPunctuation + validAlpha + digitRanges + "]*" +
		"(?:" + extnPatterns + ")?$")
)
