package form

import "log/slog"

type config struct {
	validateOnChange bool
	validateOnBlur   bool
	validateOnSubmit bool
	log              *slog.Logger
}

// All triggers default to on: the common screen wants inline feedback on
// every keystroke and blur, and a hard gate on submit.
func defaultConfig() config {
	return config{
		validateOnChange: true,
		validateOnBlur:   true,
		validateOnSubmit: true,
		log:              slog.Default(),
	}
}

// Option configures form construction.
type Option func(*config)

// WithValidateOnChange toggles revalidation inside SetValue.
func WithValidateOnChange(enabled bool) Option {
	return func(c *config) { c.validateOnChange = enabled }
}

// WithValidateOnBlur toggles revalidation inside SetTouched.
func WithValidateOnBlur(enabled bool) Option {
	return func(c *config) { c.validateOnBlur = enabled }
}

// WithValidateOnSubmit toggles the Validate gate inside the submit handler.
func WithValidateOnSubmit(enabled bool) Option {
	return func(c *config) { c.validateOnSubmit = enabled }
}

// WithLogger injects the logger used for validator panics and unknown-field
// warnings. Nil loggers are ignored to keep the default in place.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
