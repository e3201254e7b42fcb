// Package validator provides stateless, composable validation rules for form
// input: generic string predicates (required, length bounds, numeric-only,
// email shape) and Brazilian document checks backed by package brdoc.
//
// Every exported function constructs a Rule value pairing a boolean Check
// closure with a field-scoped error message. Rules are evaluated together with
// Apply, which aggregates failures into a ValidationErrors slice implementing
// the error interface, or with Message, which returns only the first failing
// message — the shape the form engine consumes.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.ValidCPF("cpf", cpf),
//	)
//
// Or, inside a form validation registry:
//
//	"cpf": func(v string, _ form.Values[string]) string {
//	    return validator.Message(
//	        validator.Required("cpf", v),
//	        validator.ValidCPF("cpf", v),
//	    )
//	},
//
// There is no hidden state; the package is goroutine-safe and allocation-light.
package validator
