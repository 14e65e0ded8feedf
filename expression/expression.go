package expression

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bnkr/simpliform/form"
)

func compile(kind, code string, env any, opts ...expr.Option) (*vm.Program, error) {
	opts = append([]expr.Option{expr.Env(env)}, opts...)

	program, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, &form.ConfigurationError{
			What:   kind + " expression",
			Value:  code,
			Reason: fmt.Sprintf("cannot compile %q", code),
			Cause:  err,
		}
	}

	return program, nil
}

type triggerEnv struct {
	Field string `expr:"field"`
}

type trigger struct {
	code    string
	program *vm.Program
}

// Trigger compiles code into a form.Trigger. An expression that fails at
// run time does not match.
func Trigger(code string) (form.Trigger, error) {
	program, err := compile("trigger", code, triggerEnv{}, expr.AsBool())
	if err != nil {
		return nil, err
	}

	return &trigger{code: code, program: program}, nil
}

func (t *trigger) Matches(e form.Event) bool {
	out, err := vm.Run(t.program, triggerEnv{Field: e.Field()})
	if err != nil {
		return false
	}

	matched, _ := out.(bool)

	return matched
}

func (t *trigger) String() string {
	return t.code
}

// valueEnv is the environment of validations and processing steps.
type valueEnv struct {
	Value any              `expr:"value"`
	Field string           `expr:"field"`
	Raw   map[string]any   `expr:"raw"`
	Get   func(string) any `expr:"get"`
}

// run evaluates program against the field of c. A failed get is returned
// as the error, after the expression finishes.
func run(program *vm.Program, value any, c *form.Context) (any, error) {
	var failed error

	env := valueEnv{
		Value: value,
		Field: c.Field(),
		Raw:   c.RawInput(),
		Get: func(name string) any {
			v, err := c.Get(name)
			if err != nil && failed == nil {
				failed = err
			}

			return v
		},
	}

	out, err := vm.Run(program, env)
	if failed != nil {
		return nil, failed
	}

	return out, err
}

type validation struct {
	code    string
	program *vm.Program
}

// Validation compiles code into a form.Validation. The result is judged by
// the rules of form.NewValidationProcessing.
func Validation(code string) (form.Validation, error) {
	program, err := compile("validation", code, valueEnv{})
	if err != nil {
		return nil, err
	}

	return &validation{code: code, program: program}, nil
}

func (v *validation) Validate(value any, c *form.Context) (any, error) {
	return run(v.program, value, c)
}

func (v *validation) String() string {
	return v.code
}

type processing struct {
	code    string
	program *vm.Program
}

// Processing compiles code into a form.Processing whose result becomes the
// new field value.
func Processing(code string) (form.Processing, error) {
	program, err := compile("processing", code, valueEnv{})
	if err != nil {
		return nil, err
	}

	return &processing{code: code, program: program}, nil
}

func (p *processing) Execute(c *form.Context) (form.Outcome, error) {
	out, err := run(p.program, c.Value(), c)
	if err != nil {
		return form.Outcome{}, err
	}

	return form.Outcome{Value: out}, nil
}

func (p *processing) String() string {
	return p.code
}
