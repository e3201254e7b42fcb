package brdoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/brdoc"
)

func TestCleanCNPJ(t *testing.T) {
	t.Run("strips mask characters", func(t *testing.T) {
		assert.Equal(t, "11222333000181", brdoc.CleanCNPJ("11.222.333/0001-81"))
	})

	t.Run("idempotent", func(t *testing.T) {
		cleaned := brdoc.CleanCNPJ("11.222.333/0001-81")
		assert.Equal(t, cleaned, brdoc.CleanCNPJ(cleaned))
	})
}

func TestFormatCNPJ(t *testing.T) {
	t.Run("applies full mask", func(t *testing.T) {
		assert.Equal(t, "11.222.333/0001-81", brdoc.FormatCNPJ("11222333000181"))
	})

	t.Run("partial input gets partial mask", func(t *testing.T) {
		assert.Equal(t, "11.222.3", brdoc.FormatCNPJ("112223"))
		assert.Equal(t, "11.222.333/0001", brdoc.FormatCNPJ("112223330001"))
	})

	t.Run("truncates excess digits", func(t *testing.T) {
		assert.Equal(t, "11.222.333/0001-81", brdoc.FormatCNPJ("11222333000181999"))
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		formatted := brdoc.FormatCNPJ("11222333000181")
		assert.Equal(t, formatted, brdoc.FormatCNPJ(formatted))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", brdoc.FormatCNPJ(""))
	})
}

func TestIsValidCNPJ(t *testing.T) {
	t.Run("accepts known valid CNPJ", func(t *testing.T) {
		assert.True(t, brdoc.IsValidCNPJ("11222333000181"))
		assert.True(t, brdoc.IsValidCNPJ("11.222.333/0001-81"))
	})

	t.Run("rejects repeated-digit run", func(t *testing.T) {
		assert.False(t, brdoc.IsValidCNPJ("11111111111111"))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, brdoc.IsValidCNPJ(""))
		assert.False(t, brdoc.IsValidCNPJ("1122233300018"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.False(t, brdoc.IsValidCNPJ("11222333000182"))
		assert.False(t, brdoc.IsValidCNPJ("11222333000191"))
	})
}

func TestGenerateCNPJ(t *testing.T) {
	t.Run("generated CNPJs always validate", func(t *testing.T) {
		for range 100 {
			cnpj := brdoc.GenerateCNPJ()
			assert.True(t, brdoc.IsValidCNPJ(cnpj), "generated CNPJ %q failed validation", cnpj)
		}
	})

	t.Run("uses the 0001 branch suffix", func(t *testing.T) {
		cnpj := brdoc.GenerateCNPJ()
		assert.True(t, strings.Contains(cnpj, "/0001-"), "expected first-registration branch in %q", cnpj)
	})
}

func TestMaskCNPJ(t *testing.T) {
	t.Run("hides all but the last four digits", func(t *testing.T) {
		assert.Equal(t, "**********0181", brdoc.MaskCNPJ("11.222.333/0001-81"))
	})
}
