// Package phonetext pre-processes free-form text that is supposed to
// contain a telephone number, before any country-specific parsing happens:
// it carves a candidate substring out of surrounding noise, decides whether
// that substring is shape-viable as a phone number, and normalizes its
// characters into a canonical digit string, optionally translating
// keypad letters ("vanity" characters) into digits.
//
// All state in this package is built once at init and never mutated, so
// every exported function is safe for unlimited concurrent use.
package phonetext

// Length bounds shared with the country-metadata layers that consume the
// normalized output. A national significant number (the digits excluding
// country code and national prefix) shorter than MinLengthNSN cannot be a
// phone number anywhere.
const (
	MinLengthNSN         = 3
	MaxLengthNSN         = 15
	MaxLengthCountryCode = 3

	// DefaultExtnPrefix is the preferred extension prefix when a number
	// with an extension is rendered back to text.
	DefaultExtnPrefix = " ext. "
)

// PhoneNumberFormat enumerates the output layouts a formatting layer
// produces from a parsed number.
type PhoneNumberFormat int

const (
	FormatE164 PhoneNumberFormat = iota
	FormatInternational
	FormatNational
)

func (f PhoneNumberFormat) String() string {
	switch f {
	case FormatE164:
		return "E164"
	case FormatInternational:
		return "INTERNATIONAL"
	case FormatNational:
		return "NATIONAL"
	}
	return "UNKNOWN"
}

// PhoneNumberType enumerates line-type classifications assigned by a
// metadata-driven layer. This package never classifies; the tags are part
// of the shared contract.
type PhoneNumberType int

const (
	TypeFixedLine PhoneNumberType = iota
	TypeMobile
	TypeFixedLineOrMobile
	TypeTollFree
	TypePremiumRate
	TypeSharedCost
	TypeVOIP
	TypePersonalNumber
	TypePager
	TypeUAN
	TypeUnknown
)

var phoneNumberTypeNames = map[PhoneNumberType]string{
	TypeFixedLine:         "FIXED_LINE",
	TypeMobile:            "MOBILE",
	TypeFixedLineOrMobile: "FIXED_LINE_OR_MOBILE",
	TypeTollFree:          "TOLL_FREE",
	TypePremiumRate:       "PREMIUM_RATE",
	TypeSharedCost:        "SHARED_COST",
	TypeVOIP:              "VOIP",
	TypePersonalNumber:    "PERSONAL_NUMBER",
	TypePager:             "PAGER",
	TypeUAN:               "UAN",
	TypeUnknown:           "UNKNOWN",
}

func (t PhoneNumberType) String() string {
	if s, ok := phoneNumberTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// MatchType enumerates the outcomes of comparing two numbers.
type MatchType int

const (
	MatchNotANumber MatchType = iota
	MatchNone
	MatchShortNSN
	MatchNSN
	MatchExact
)

func (m MatchType) String() string {
	switch m {
	case MatchNotANumber:
		return "NOT_A_NUMBER"
	case MatchNone:
		return "NO_MATCH"
	case MatchShortNSN:
		return "SHORT_NSN_MATCH"
	case MatchNSN:
		return "NSN_MATCH"
	case MatchExact:
		return "EXACT_MATCH"
	}
	return "NOT_A_NUMBER"
}

// ValidationResult enumerates the outcomes of a possible-number check.
type ValidationResult int

const (
	ResultIsPossible ValidationResult = iota
	ResultInvalidCountryCode
	ResultTooShort
	ResultTooLong
)

func (v ValidationResult) String() string {
	switch v {
	case ResultIsPossible:
		return "IS_POSSIBLE"
	case ResultInvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case ResultTooShort:
		return "TOO_SHORT"
	case ResultTooLong:
		return "TOO_LONG"
	}
	return "IS_POSSIBLE"
}
