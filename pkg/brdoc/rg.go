package brdoc

import "math/rand/v2"

// RG length varies by issuing state; eight digits or nine with a verifier
// position. No checksum is modeled here because each state defines its own.
const (
	rgMinLength = 8
	rgMaxLength = 9
)

// Progressive masking lets the nine-digit mask serve both lengths: an
// eight-digit RG never reaches the trailing verifier slot.
const rgMask = "00.000.000-0"

// CleanRG strips formatting from an RG, leaving digits only.
func CleanRG(raw string) string {
	return cleanDigits(raw)
}

// FormatRG applies the 00.000.000-0 mask to the cleaned digits, truncating
// excess digits and masking partial input progressively. Input without any
// digits is returned unchanged.
func FormatRG(raw string) string {
	digits := CleanRG(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > rgMaxLength {
		digits = digits[:rgMaxLength]
	}
	return applyMask(digits, rgMask)
}

// IsValidRG validates an RG structurally: eight or nine digits and not a
// repeated-digit run.
func IsValidRG(raw string) bool {
	digits := CleanRG(raw)
	if len(digits) < rgMinLength || len(digits) > rgMaxLength {
		return false
	}
	return !repeatedRun(digits)
}

// GenerateRG returns a random valid RG, eight or nine digits, in formatted
// form. Test support only.
func GenerateRG() string {
	n := rgMinLength + rand.IntN(2)
	for {
		digits := digitString(randomDigits(n))
		if !repeatedRun(digits) {
			return FormatRG(digits)
		}
	}
}
