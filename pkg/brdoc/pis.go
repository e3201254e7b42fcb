package brdoc

// pisLength is the canonical PIS/PASEP digit count: ten base digits plus one
// check digit.
const pisLength = 11

const pisMask = "000.00000.00-0"

var pisWeights = []int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// CleanPIS strips formatting from a PIS number, leaving digits only.
func CleanPIS(raw string) string {
	return cleanDigits(raw)
}

// FormatPIS applies the 000.00000.00-0 mask to the cleaned digits, truncating
// excess digits and masking partial input progressively. Input without any
// digits is returned unchanged.
func FormatPIS(raw string) string {
	digits := CleanPIS(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > pisLength {
		digits = digits[:pisLength]
	}
	return applyMask(digits, pisMask)
}

// IsValidPIS validates a PIS number using its single modulo-11 check digit.
// Formatting characters are ignored; wrong length and repeated-digit runs are
// rejected before any arithmetic.
func IsValidPIS(raw string) bool {
	digits := CleanPIS(raw)
	if len(digits) != pisLength || repeatedRun(digits) {
		return false
	}

	vals := digitVals(digits)
	return mod11CheckDigit(vals[:10], pisWeights) == vals[10]
}

// GeneratePIS returns a random, checksum-correct PIS number in formatted form.
// Test support only. An all-zero base is redrawn: its check digit is 0, which
// produces the repeated-digit run IsValidPIS rejects.
func GeneratePIS() string {
	for {
		vals := randomDigits(10)
		if repeatedRun(digitString(vals)) {
			continue
		}
		vals = append(vals, mod11CheckDigit(vals, pisWeights))
		return FormatPIS(digitString(vals))
	}
}
