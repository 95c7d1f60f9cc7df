package jalali

import "strings"

// Digit transliteration is presentation-only: stored and compared values
// always keep ASCII digits.

// ToPersianDigits replaces ASCII digits with Persian numeral glyphs.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}

// ToASCIIDigits replaces Persian numeral glyphs with ASCII digits.
func ToASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '۰' && r <= '۹' {
			return '0' + (r - '۰')
		}
		return r
	}, s)
}
