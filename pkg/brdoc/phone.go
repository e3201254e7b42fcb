package brdoc

import "math/rand/v2"

// Brazilian phone numbers are ten digits for landlines and eleven for mobiles,
// both starting with a two-digit area code.
const (
	phoneLandlineLength = 10
	phoneMobileLength   = 11
)

const (
	phoneLandlineMask = "(00) 0000-0000"
	phoneMobileMask   = "(00) 00000-0000"
)

// CleanPhoneBR strips formatting from a Brazilian phone number, leaving
// digits only.
func CleanPhoneBR(raw string) string {
	return cleanDigits(raw)
}

// FormatPhoneBR applies the (00) 0000-0000 or (00) 00000-0000 mask depending
// on digit count, truncating excess digits and masking partial input
// progressively. Input without any digits is returned unchanged.
func FormatPhoneBR(raw string) string {
	digits := CleanPhoneBR(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > phoneMobileLength {
		digits = digits[:phoneMobileLength]
	}

	mask := phoneLandlineMask
	if len(digits) > phoneLandlineLength {
		mask = phoneMobileMask
	}
	return applyMask(digits, mask)
}

// IsValidPhoneBR validates a Brazilian phone number structurally: ten or
// eleven digits, area code in [11,99], and the leading 9 mobile marker for
// eleven-digit numbers. Phone numbers carry no checksum.
func IsValidPhoneBR(raw string) bool {
	digits := CleanPhoneBR(raw)
	if len(digits) != phoneLandlineLength && len(digits) != phoneMobileLength {
		return false
	}

	area := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if area < 11 || area > 99 {
		return false
	}

	if len(digits) == phoneMobileLength && digits[2] != '9' {
		return false
	}
	return true
}

// GeneratePhoneBR returns a random valid Brazilian mobile number in formatted
// form. Test support only.
func GeneratePhoneBR() string {
	vals := make([]int, 0, phoneMobileLength)
	area := 11 + rand.IntN(89)
	vals = append(vals, area/10, area%10, 9)
	vals = append(vals, randomDigits(8)...)
	return FormatPhoneBR(digitString(vals))
}
