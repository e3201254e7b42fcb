package brdoc

import "strings"

// maskTail hides all but the last four digits, the same convention the
// masking helpers for payment cards and SSNs follow: enough to let a user
// recognize their own document without exposing it in logs.
func maskTail(digits string) string {
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskPhoneBR hides all but the last four digits of a Brazilian phone number
// for log-safe display.
func MaskPhoneBR(raw string) string {
	return maskTail(CleanPhoneBR(raw))
}
