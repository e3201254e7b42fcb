package form

// Field holds the tracked state of a single form field. Error is empty when
// the field currently passes its validator (or has none). Touched is monotonic
// for the life of the field instance; only a reset clears it. Dirty is true
// exactly when Value differs from the field's baseline value.
type Field[T comparable] struct {
	Value   T
	Error   string
	Touched bool
	Dirty   bool
}

// Values is the plain value view of a form, keyed by field name.
type Values[T comparable] map[string]T

// State is the derived snapshot of a whole form. It is recomputed from the
// field map on every read. Errors holds only failing fields, so IsValid holds
// exactly when Errors is empty.
type State[T comparable] struct {
	Fields    map[string]Field[T]
	Errors    map[string]string
	IsValid   bool
	IsDirty   bool
	IsTouched bool
}
