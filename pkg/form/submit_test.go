package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

type recordedEvent struct {
	prevented bool
	stopped   bool
}

func (e *recordedEvent) PreventDefault()  { e.prevented = true }
func (e *recordedEvent) StopPropagation() { e.stopped = true }

func TestSubmit(t *testing.T) {
	t.Run("invalid form never reaches onSubmit", func(t *testing.T) {
		f := form.New(
			form.Values[string]{"email": ""},
			form.Validation[string]{"email": emailValidator("email")},
		)

		called := false
		submit := f.Submit(func(form.Values[string]) { called = true })
		submit(nil)

		assert.False(t, called)
		assert.False(t, f.State().IsValid)
	})

	t.Run("valid form hands the plain value object to onSubmit", func(t *testing.T) {
		f := form.New(
			form.Values[string]{"email": "a@b.com", "name": "John"},
			form.Validation[string]{"email": emailValidator("email")},
		)

		var got form.Values[string]
		submit := f.Submit(func(values form.Values[string]) { got = values })
		submit(nil)

		require.NotNil(t, got)
		assert.Equal(t, form.Values[string]{"email": "a@b.com", "name": "John"}, got)
	})

	t.Run("suppresses default event behavior", func(t *testing.T) {
		f := form.New(form.Values[string]{"name": ""}, nil)

		evt := &recordedEvent{}
		submit := f.Submit(func(form.Values[string]) {})
		submit(evt)

		assert.True(t, evt.prevented)
		assert.True(t, evt.stopped)
	})

	t.Run("submit gate can be disabled", func(t *testing.T) {
		f := form.New(
			form.Values[string]{"email": ""},
			form.Validation[string]{"email": emailValidator("email")},
			form.WithValidateOnSubmit(false),
		)

		called := false
		submit := f.Submit(func(form.Values[string]) { called = true })
		submit(nil)

		assert.True(t, called)
	})

	t.Run("nil onSubmit still validates safely", func(t *testing.T) {
		f := form.New(form.Values[string]{"name": ""}, nil)
		assert.NotPanics(t, func() { f.Submit(nil)(nil) })
	})
}
