package brdoc

// cpfLength is the canonical CPF digit count: nine base digits plus two
// check digits.
const cpfLength = 11

const cpfMask = "000.000.000-00"

// CleanCPF strips formatting from a CPF, leaving digits only.
func CleanCPF(raw string) string {
	return cleanDigits(raw)
}

// FormatCPF applies the 000.000.000-00 mask to the cleaned digits, truncating
// excess digits and masking partial input progressively. Input without any
// digits is returned unchanged.
func FormatCPF(raw string) string {
	digits := CleanCPF(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > cpfLength {
		digits = digits[:cpfLength]
	}
	return applyMask(digits, cpfMask)
}

// IsValidCPF validates a CPF using the modulo-11 check-digit algorithm.
// Formatting characters are ignored; wrong length and repeated-digit runs
// are rejected before any arithmetic.
func IsValidCPF(raw string) bool {
	digits := CleanCPF(raw)
	if len(digits) != cpfLength || repeatedRun(digits) {
		return false
	}

	vals := digitVals(digits)
	if cpfCheckDigit(vals[:9], 10) != vals[9] {
		return false
	}
	return cpfCheckDigit(vals[:10], 11) == vals[10]
}

// GenerateCPF returns a random, checksum-correct CPF in formatted form.
// Test support only: the value is arithmetically valid, not registered.
// Identical base digits are redrawn: nine repeated digits k yield k for both
// check digits, producing the repeated-digit run IsValidCPF rejects.
func GenerateCPF() string {
	for {
		vals := randomDigits(9)
		if repeatedRun(digitString(vals)) {
			continue
		}
		vals = append(vals, cpfCheckDigit(vals, 10))
		vals = append(vals, cpfCheckDigit(vals, 11))
		return FormatCPF(digitString(vals))
	}
}

// MaskCPF hides all but the last four digits for log-safe display.
func MaskCPF(raw string) string {
	return maskTail(CleanCPF(raw))
}
