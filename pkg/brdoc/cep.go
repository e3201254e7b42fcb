package brdoc

// cepLength is the canonical CEP digit count.
const cepLength = 8

const cepMask = "00000-000"

// CleanCEP strips formatting from a CEP, leaving digits only.
func CleanCEP(raw string) string {
	return cleanDigits(raw)
}

// FormatCEP applies the 00000-000 mask to the cleaned digits, truncating
// excess digits and masking partial input progressively. Input without any
// digits is returned unchanged.
func FormatCEP(raw string) string {
	digits := CleanCEP(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > cepLength {
		digits = digits[:cepLength]
	}
	return applyMask(digits, cepMask)
}

// IsValidCEP validates a CEP structurally: exactly eight digits and not a
// repeated-digit run. CEPs carry no checksum.
func IsValidCEP(raw string) bool {
	digits := CleanCEP(raw)
	return len(digits) == cepLength && !repeatedRun(digits)
}

// GenerateCEP returns a random valid CEP in formatted form. Test support only.
func GenerateCEP() string {
	for {
		digits := digitString(randomDigits(cepLength))
		if !repeatedRun(digits) {
			return FormatCEP(digits)
		}
	}
}
