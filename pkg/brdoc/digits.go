package brdoc

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// cleanDigits strips every non-digit character. Idempotent by construction.
func cleanDigits(raw string) string {
	return nonDigitRegex.ReplaceAllString(raw, "")
}

// applyMask fills the '0' slots of mask with digits, stopping as soon as the
// digits run out so partial input never ends in a separator.
func applyMask(digits, mask string) string {
	var b strings.Builder
	b.Grow(len(mask))

	next := 0
	for _, r := range mask {
		if next == len(digits) {
			break
		}
		if r == '0' {
			b.WriteByte(digits[next])
			next++
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// repeatedRun reports whether the string is a run of one repeated digit.
// Sequences like "11111111111" pass checksum arithmetic but are known-invalid
// documents, so every validator rejects them up front.
func repeatedRun(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func digitVals(digits string) []int {
	vals := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		vals[i] = int(digits[i] - '0')
	}
	return vals
}

func digitString(vals []int) string {
	var b strings.Builder
	b.Grow(len(vals))
	for _, v := range vals {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

func randomDigits(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rand.IntN(10)
	}
	return vals
}

// cpfCheckDigit computes a CPF check digit: a weighted sum with weights
// counting down from firstWeight, then (sum*10) mod 11, with 10 mapped to 0.
func cpfCheckDigit(vals []int, firstWeight int) int {
	sum := 0
	for i, v := range vals {
		sum += v * (firstWeight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return rem
}

// mod11CheckDigit computes a check digit from a weighted sum modulo 11, the
// scheme shared by CNPJ and PIS: remainders below 2 collapse to 0, everything
// else is 11 minus the remainder.
func mod11CheckDigit(vals, weights []int) int {
	sum := 0
	for i, v := range vals {
		sum += v * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
