package validate

import "strings"

// FormatPhone normalizes a phone number for display as it is typed. All
// non-digit characters are stripped; with 10 or more digits the last ten
// become area/middle/last and the country code defaults to 1 unless the
// stripped digits already start with 1. Shorter input is returned unchanged.
// The country-code handling is a heuristic carried over from the original
// forms; it is not an E.164 parser.
func FormatPhone(v string) string {
	digits := stripNonDigits(v)
	if len(digits) < 10 {
		return v
	}
	countryCode := "1"
	if strings.HasPrefix(digits, "1") {
		countryCode = digits[:1]
	}
	area := digits[len(digits)-10 : len(digits)-7]
	middle := digits[len(digits)-7 : len(digits)-4]
	last := digits[len(digits)-4:]
	return "+" + countryCode + " (" + area + ") " + middle + "-" + last
}

// FormatZip strips non-digits and inserts the ZIP+4 hyphen after the fifth
// digit, truncating at nine digits total.
func FormatZip(v string) string {
	digits := stripNonDigits(v)
	if len(digits) > 5 {
		if len(digits) > 9 {
			digits = digits[:9]
		}
		return digits[:5] + "-" + digits[5:]
	}
	return digits
}

func stripNonDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
