package form

// Outcome is the result of a processing step: the value handed to the next
// step and any error payloads reported for the field.
type Outcome struct {
	Value  any
	Errors []any
}

// Failed reports whether the outcome carries errors.
func (o Outcome) Failed() bool {
	return len(o.Errors) > 0
}

// Processing transforms or checks the value of the field being evaluated.
//
// A non-nil error is the single-error variant of a failed outcome; it is
// recorded against the field like an entry of Outcome.Errors, unless it is
// structural (see IsFatal) in which case the evaluation cycle is aborted.
type Processing interface {
	Execute(c *Context) (Outcome, error)
}

// ProcessingFunc adapts a plain function to the Processing interface. The
// returned value becomes the new field value.
type ProcessingFunc func(c *Context) (any, error)

func (f ProcessingFunc) Execute(c *Context) (Outcome, error) {
	v, err := f(c)
	return Outcome{Value: v}, err
}

type outcomeFunc func(c *Context) Outcome

func (f outcomeFunc) Execute(c *Context) (Outcome, error) {
	return f(c), nil
}

// ToProcessing normalizes a registration argument into a Processing. It
// accepts a Processing, a func(*Context) (any, error), a func(*Context) any
// or a func(*Context) Outcome.
func ToProcessing(v any) (Processing, error) {
	switch p := v.(type) {
	case Processing:
		return p, nil
	case func(*Context) (any, error):
		return ProcessingFunc(p), nil
	case func(*Context) any:
		return ProcessingFunc(func(c *Context) (any, error) { return p(c), nil }), nil
	case func(*Context) Outcome:
		return outcomeFunc(p), nil
	default:
		return nil, badType("processing", v)
	}
}
