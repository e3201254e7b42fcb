package form

import (
	"log/slog"
	"sync"
)

// Form tracks per-field state for one screen-lifetime form instance. The
// field key set is fixed at construction; mutators on unknown keys are
// ignored with a warning instead of growing the map.
//
// The field map is guarded with a mutex the same way a state machine guards
// its transition table, so a form instance shared across goroutines stays
// coherent even though the intended use is a single UI event loop.
type Form[T comparable] struct {
	mu         sync.RWMutex
	initial    Values[T]
	fields     map[string]*Field[T]
	validation Validation[T]
	cfg        config
}

// New constructs a form whose fields are exactly the keys of initial, each
// starting untouched, clean, and error-free. The validation registry is owned
// by the caller and never mutated by the form; fields without a registered
// validator always pass.
func New[T comparable](initial Values[T], validation Validation[T], opts ...Option) *Form[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Form[T]{
		initial:    make(Values[T], len(initial)),
		fields:     make(map[string]*Field[T], len(initial)),
		validation: validation,
		cfg:        cfg,
	}
	for name, value := range initial {
		f.initial[name] = value
		f.fields[name] = &Field[T]{Value: value}
	}
	return f
}

// SetValue writes a new value (keystroke path), recomputes dirtiness against
// the baseline, and, when change validation is on, revalidates the field
// against the post-write value set.
func (f *Form[T]) SetValue(field string, value T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[field]
	if !ok {
		f.warnUnknownField("SetValue", field)
		return
	}

	fld.Value = value
	fld.Dirty = value != f.initial[field]
	if f.cfg.validateOnChange {
		fld.Error = f.runValidator(field, f.valuesLocked())
	}
}

// SetTouched marks a field as having lost focus at least once (blur path).
// Touched never reverts except through a reset. When blur validation is on,
// the field is revalidated.
func (f *Form[T]) SetTouched(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[field]
	if !ok {
		f.warnUnknownField("SetTouched", field)
		return
	}

	fld.Touched = true
	if f.cfg.validateOnBlur {
		fld.Error = f.runValidator(field, f.valuesLocked())
	}
}

// SetError overrides a field's error directly, bypassing the registry.
// Used for server-reported errors surfaced after a submit round trip.
func (f *Form[T]) SetError(field, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[field]
	if !ok {
		f.warnUnknownField("SetError", field)
		return
	}
	fld.Error = msg
}

// SetDirty overrides a field's dirtiness directly, bypassing the baseline
// comparison. Used for programmatic dirtiness in edit flows.
func (f *Form[T]) SetDirty(field string, dirty bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fld, ok := f.fields[field]
	if !ok {
		f.warnUnknownField("SetDirty", field)
		return
	}
	fld.Dirty = dirty
}

// ResetField restores one field to its baseline value with every flag
// cleared.
func (f *Form[T]) ResetField(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[field]; !ok {
		f.warnUnknownField("ResetField", field)
		return
	}
	f.fields[field] = &Field[T]{Value: f.initial[field]}
}

// Reset rebuilds every field from the baseline values with overrides merged
// on top. Overridden values become the new baseline, so a "reload" form
// starts pristine: untouched, clean, error-free. Unknown override keys are
// ignored — the field set never grows.
func (f *Form[T]) Reset(overrides Values[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, value := range overrides {
		if _, ok := f.fields[name]; !ok {
			f.warnUnknownField("Reset", name)
			continue
		}
		f.initial[name] = value
	}
	for name := range f.fields {
		f.fields[name] = &Field[T]{Value: f.initial[name]}
	}
}

// Field returns a copy of one field's state.
func (f *Form[T]) Field(name string) (Field[T], bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fld, ok := f.fields[name]
	if !ok {
		return Field[T]{}, false
	}
	return *fld, true
}

// Values returns the plain value object, one entry per field.
func (f *Form[T]) Values() Values[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valuesLocked()
}

// State derives the aggregate snapshot from the field map: IsValid when no
// field carries an error, IsDirty when any field is dirty, IsTouched when any
// field was touched.
func (f *Form[T]) State() State[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st := State[T]{
		Fields:  make(map[string]Field[T], len(f.fields)),
		Errors:  make(map[string]string),
		IsValid: true,
	}
	for name, fld := range f.fields {
		st.Fields[name] = *fld
		if fld.Error != "" {
			st.Errors[name] = fld.Error
			st.IsValid = false
		}
		st.IsDirty = st.IsDirty || fld.Dirty
		st.IsTouched = st.IsTouched || fld.Touched
	}
	return st
}

// valuesLocked snapshots current values. Callers must hold at least a read
// lock.
func (f *Form[T]) valuesLocked() Values[T] {
	values := make(Values[T], len(f.fields))
	for name, fld := range f.fields {
		values[name] = fld.Value
	}
	return values
}

func (f *Form[T]) warnUnknownField(op, field string) {
	f.cfg.log.Warn("form operation on unknown field",
		slog.String("op", op),
		slog.String("field", field),
	)
}
