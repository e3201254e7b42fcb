package form

// SubmitEvent is the minimal surface of a DOM-style submit event. The handler
// returned by Submit accepts a nil event for direct invocation.
type SubmitEvent interface {
	PreventDefault()
	StopPropagation()
}

// Submit returns the form's submit handler. On invocation it suppresses the
// event's default behavior when an event is given, gates on Validate when
// submit validation is on, and otherwise hands the plain value object to
// onSubmit. The callback is invoked synchronously and not tracked; in-flight
// and duplicate-submission guarding belongs to the caller.
func (f *Form[T]) Submit(onSubmit func(values Values[T])) func(SubmitEvent) {
	return func(evt SubmitEvent) {
		if evt != nil {
			evt.PreventDefault()
			evt.StopPropagation()
		}

		if f.cfg.validateOnSubmit && !f.Validate() {
			return
		}

		if onSubmit != nil {
			onSubmit(f.Values())
		}
	}
}
