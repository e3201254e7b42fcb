package brdoc

// cnpjLength is the canonical CNPJ digit count: eight root digits, a
// four-digit branch suffix, and two check digits.
const cnpjLength = 14

const cnpjMask = "00.000.000/0000-00"

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CleanCNPJ strips formatting from a CNPJ, leaving digits only.
func CleanCNPJ(raw string) string {
	return cleanDigits(raw)
}

// FormatCNPJ applies the 00.000.000/0000-00 mask to the cleaned digits,
// truncating excess digits and masking partial input progressively. Input
// without any digits is returned unchanged.
func FormatCNPJ(raw string) string {
	digits := CleanCNPJ(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > cnpjLength {
		digits = digits[:cnpjLength]
	}
	return applyMask(digits, cnpjMask)
}

// IsValidCNPJ validates a CNPJ using the modulo-11 check-digit algorithm with
// the standard weight vectors. Formatting characters are ignored; wrong length
// and repeated-digit runs are rejected before any arithmetic.
func IsValidCNPJ(raw string) bool {
	digits := CleanCNPJ(raw)
	if len(digits) != cnpjLength || repeatedRun(digits) {
		return false
	}

	vals := digitVals(digits)
	if mod11CheckDigit(vals[:12], cnpjWeights1) != vals[12] {
		return false
	}
	return mod11CheckDigit(vals[:13], cnpjWeights2) == vals[13]
}

// GenerateCNPJ returns a random, checksum-correct CNPJ in formatted form.
// The branch suffix is fixed at 0001, matching a company's first registration.
// Test support only.
func GenerateCNPJ() string {
	vals := randomDigits(8)
	vals = append(vals, 0, 0, 0, 1)
	vals = append(vals, mod11CheckDigit(vals, cnpjWeights1))
	vals = append(vals, mod11CheckDigit(vals, cnpjWeights2))
	return FormatCNPJ(digitString(vals))
}

// MaskCNPJ hides all but the last four digits for log-safe display.
func MaskCNPJ(raw string) string {
	return maskTail(CleanCNPJ(raw))
}
