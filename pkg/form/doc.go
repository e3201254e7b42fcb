// Package form provides a framework-agnostic field-state container for
// keystroke-driven forms: per-field value, error, touched, and dirty tracking,
// a caller-supplied validation registry, and a gated submit handler.
//
// A Form is generic over the field value type (string for keyboard input) and
// owns an isolated field map keyed by the names passed at construction; keys
// are never added or removed afterwards. Validation runs synchronously on
// configurable triggers — change, blur, submit — against the full current
// value set, so cross-field rules (password confirmation, conditional
// requirements) see consistent data.
//
// # Usage
//
//	f := form.New(
//	    form.Values[string]{"email": "", "cpf": ""},
//	    form.Validation[string]{
//	        "email": func(v string, _ form.Values[string]) string {
//	            return validator.Message(validator.Required("email", v), validator.ValidEmail("email", v))
//	        },
//	        "cpf": func(v string, _ form.Values[string]) string {
//	            return validator.Message(validator.ValidCPF("cpf", v))
//	        },
//	    },
//	)
//
//	f.SetValue("email", "user@example.com") // keystroke
//	f.SetTouched("email")                   // blur
//	submit := f.Submit(func(values form.Values[string]) { /* persist */ })
//	submit(nil)
//
// The derived State snapshot is recomputed on every read and never stored, so
// IsValid/IsDirty/IsTouched cannot drift from the per-field flags.
//
// Validators must not panic; if one does, the engine recovers, assigns the
// field the generic ValidatorPanicMessage, and logs the field name through the
// injected slog.Logger rather than crashing the caller's event loop.
package form
