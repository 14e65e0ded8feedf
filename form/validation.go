package form

import "reflect"

// FalseMessage is reported when a validation returns false.
const FalseMessage = "Validation returned false."

// Validation checks a value without changing it.
//
// The verdict follows a mixed protocol: true, nil or an empty list means
// valid; false means invalid with a single generic message; a non-empty
// list ([]any, []string, []error or any other slice) means invalid with one
// message per element. A non-nil error is reported as well.
type Validation interface {
	Validate(value any, c *Context) (any, error)
}

// ValidationFunc adapts a function to the Validation interface.
type ValidationFunc func(value any, c *Context) (any, error)

func (f ValidationFunc) Validate(value any, c *Context) (any, error) {
	return f(value, c)
}

// ValidationProcessing runs a Validation as a processing step. The value is
// always passed through untouched.
type ValidationProcessing struct {
	validation Validation
}

// NewValidationProcessing wraps v as a processing step.
func NewValidationProcessing(v Validation) *ValidationProcessing {
	return &ValidationProcessing{validation: v}
}

func (p *ValidationProcessing) Execute(c *Context) (Outcome, error) {
	out := Outcome{Value: c.Value()}

	verdict, err := p.validation.Validate(c.Value(), c)
	out.Errors = verdictErrors(verdict)

	return out, err
}

// verdictErrors interprets a validation verdict as a list of payloads.
func verdictErrors(verdict any) []any {
	switch v := verdict.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return nil
		}

		return []any{FalseMessage}
	case []any:
		return v
	case []string:
		errs := make([]any, 0, len(v))
		for _, s := range v {
			errs = append(errs, s)
		}

		return errs
	case []error:
		errs := make([]any, 0, len(v))
		for _, e := range v {
			errs = append(errs, e)
		}

		return errs
	}

	rv := reflect.ValueOf(verdict)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		errs := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			errs = append(errs, rv.Index(i).Interface())
		}

		return errs
	}

	// Anything else is judged by truthiness, like a bool.
	if rv.IsZero() {
		return []any{FalseMessage}
	}

	return nil
}

// ToValidation normalizes a registration argument into a Validation. It
// accepts a Validation and functions of the following shapes:
//
//	func(value any, c *Context) bool
//	func(value any, c *Context) error
//	func(value any, c *Context) []string
//	func(value any, c *Context) (any, error)
//	func(value any) bool
func ToValidation(v any) (Validation, error) {
	switch fn := v.(type) {
	case Validation:
		return fn, nil
	case func(any, *Context) (any, error):
		return ValidationFunc(fn), nil
	case func(any, *Context) bool:
		return ValidationFunc(func(value any, c *Context) (any, error) {
			return fn(value, c), nil
		}), nil
	case func(any, *Context) error:
		return ValidationFunc(func(value any, c *Context) (any, error) {
			return nil, fn(value, c)
		}), nil
	case func(any, *Context) []string:
		return ValidationFunc(func(value any, c *Context) (any, error) {
			return fn(value, c), nil
		}), nil
	case func(any) bool:
		return ValidationFunc(func(value any, _ *Context) (any, error) {
			return fn(value), nil
		}), nil
	default:
		return nil, badType("validation", v)
	}
}
