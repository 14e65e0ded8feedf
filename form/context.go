package form

import (
	"errors"
	"maps"
)

// Context is handed to a processing step while a field is evaluated.
type Context struct {
	form  *Form
	field string
	value any

	// failures are dependent-field failures seen through Get during this
	// step; they are reported even if the step drops the error.
	failures []error
	// fatal is the first structural error seen during this step.
	fatal error
}

// Value returns the value being processed: the raw input for the first
// matching step, the previous step's output afterwards.
func (c *Context) Value() any {
	return c.value
}

// Field returns the name of the field being evaluated.
func (c *Context) Field() string {
	return c.field
}

// RawInput returns a copy of the unprocessed input of the whole form.
func (c *Context) RawInput() map[string]any {
	return maps.Clone(c.form.input)
}

// Form returns the form evaluating the field.
func (c *Context) Form() *Form {
	return c.form
}

// Get evaluates another field and returns its final value. Reading a field
// that is invalid or skipped returns a *DependentFieldError and fails the
// current field; reading a field that is being evaluated returns a
// *CircularDependencyError and aborts the cycle.
func (c *Context) Get(field string) (any, error) {
	return c.form.Load(field)
}

// Fail returns the error that reports message against the current field.
// The step should return it straight away:
//
//	if c.Value() == "" {
//	    return nil, c.Fail("data missing or empty")
//	}
func (c *Context) Fail(message any) error {
	return &ValidationError{Message: message}
}

// record remembers a failure seen while the step was running.
func (c *Context) record(err error) {
	if IsFatal(err) {
		if c.fatal == nil {
			c.fatal = err
		}

		return
	}

	c.failures = append(c.failures, err)
}

// collect merges everything a step reported into the payloads to record
// against the field. A structural error is returned instead.
func (c *Context) collect(out Outcome, err error) ([]any, error) {
	if c.fatal != nil {
		return nil, c.fatal
	}

	if IsFatal(err) {
		return nil, err
	}

	var errs []any
	if out.Failed() {
		errs = append(errs, out.Errors...)
	}

	if err != nil {
		errs = append(errs, err)
	}

	for _, failure := range c.failures {
		if !reported(errs, failure) {
			errs = append(errs, failure)
		}
	}

	return errs, nil
}

func reported(errs []any, target error) bool {
	for _, e := range errs {
		if err, ok := e.(error); ok && errors.Is(err, target) {
			return true
		}
	}

	return false
}
