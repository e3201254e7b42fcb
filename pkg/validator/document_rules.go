package validator

import (
	"github.com/dmitrymomot/formkit/pkg/brdoc"
)

// Document rules wrap package brdoc so a form's validation registry can mix
// document checks with the generic string rules. Each rule tolerates mask
// characters in the value: cleaning happens inside the document validators.

// ValidCPF validates a Brazilian individual taxpayer ID.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidCPF(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid CPF",
		},
	}
}

// ValidCNPJ validates a Brazilian company registration ID.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidCNPJ(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid CNPJ",
		},
	}
}

// ValidPIS validates a Brazilian social-integration program ID.
func ValidPIS(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidPIS(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid PIS",
		},
	}
}

// ValidCEP validates a Brazilian postal code.
func ValidCEP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidCEP(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid CEP",
		},
	}
}

// ValidRG validates a Brazilian state-issued identity card number.
func ValidRG(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidRG(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid RG",
		},
	}
}

// ValidPhoneBR validates a Brazilian phone number.
func ValidPhoneBR(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brdoc.IsValidPhoneBR(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}
