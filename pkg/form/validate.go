package form

import "log/slog"

// Validator checks one field against the full current value set and returns
// a user-facing message, or the empty string when the value passes.
type Validator[T comparable] func(value T, values Values[T]) string

// Validation maps field names to validators. It is authored by the form's
// creator, may mix generic and document rules, and is never mutated by the
// form.
type Validation[T comparable] map[string]Validator[T]

// ValidatorPanicMessage is assigned to a field whose validator panicked.
// A broken validator is a programmer error, but it must surface as an
// ordinary field error rather than crash the UI event loop.
const ValidatorPanicMessage = "Validation error"

// Rules composes validators for a single field; the first non-empty message
// wins.
func Rules[T comparable](validators ...Validator[T]) Validator[T] {
	return func(value T, values Values[T]) string {
		for _, validate := range validators {
			if msg := validate(value, values); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// ValidateField runs the registered validator against current values without
// mutating any state. Fields without a validator always pass.
func (f *Form[T]) ValidateField(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.runValidator(field, f.valuesLocked())
}

// Validate runs every field's validator, writes the resulting errors into the
// field map, and reports whether the form is now valid. This is the only
// operation that validates and mutates across all fields in one step.
func (f *Form[T]) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.valuesLocked()
	valid := true
	for name, fld := range f.fields {
		fld.Error = f.runValidator(name, values)
		if fld.Error != "" {
			valid = false
		}
	}
	return valid
}

// runValidator evaluates one field's validator, converting a panic into the
// generic message so a broken validator cannot take down the caller. The
// field name is logged on recovery to keep the bug findable. Callers must
// hold the lock.
func (f *Form[T]) runValidator(field string, values Values[T]) (msg string) {
	validate, ok := f.validation[field]
	if !ok {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			msg = ValidatorPanicMessage
			f.cfg.log.Error("form validator panicked",
				slog.String("field", field),
				slog.Any("panic", r),
			)
		}
	}()

	return validate(values[field], values)
}
