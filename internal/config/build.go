package config

import (
	"fmt"
	"slices"

	"github.com/bnkr/simpliform/expression"
	"github.com/bnkr/simpliform/field"
	"github.com/bnkr/simpliform/form"
)

// Build assembles a form from a validated definition.
func Build(def *Definition, opts ...form.Option) (*form.Form, error) {
	f := form.New(opts...)

	for _, fd := range def.Fields {
		fld, err := field.New(fd.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}

		if err := f.AddField(fd.Name, fld, fd.Options); err != nil {
			return nil, err
		}
	}

	for i, step := range def.Processing {
		trigger, err := stepTrigger(step)
		if err != nil {
			return nil, fmt.Errorf("processing[%d]: %w", i, err)
		}

		p, err := expression.Processing(step.Expr)
		if err != nil {
			return nil, fmt.Errorf("processing[%d]: %w", i, err)
		}

		if err := f.AddProcessing(trigger, p); err != nil {
			return nil, fmt.Errorf("processing[%d]: %w", i, err)
		}
	}

	for i, step := range def.Validations {
		trigger, err := stepTrigger(step)
		if err != nil {
			return nil, fmt.Errorf("validations[%d]: %w", i, err)
		}

		v, err := expression.Validation(step.Expr)
		if err != nil {
			return nil, fmt.Errorf("validations[%d]: %w", i, err)
		}

		if err := f.AddValidation(trigger, v); err != nil {
			return nil, fmt.Errorf("validations[%d]: %w", i, err)
		}
	}

	for i, code := range def.Disable {
		trigger, err := expression.Trigger(code)
		if err != nil {
			return nil, fmt.Errorf("disable[%d]: %w", i, err)
		}

		if err := f.Disable(trigger); err != nil {
			return nil, fmt.Errorf("disable[%d]: %w", i, err)
		}
	}

	return f, nil
}

// stepTrigger selects the fields a step runs for. No selection means every
// field.
func stepTrigger(step StepDef) (form.Trigger, error) {
	switch {
	case step.When != "":
		return expression.Trigger(step.When)
	case len(step.Field) == 1:
		return form.FieldName(step.Field[0]), nil
	case len(step.Field) > 1:
		names := slices.Clone([]string(step.Field))

		return form.TriggerFunc(func(e form.Event) bool {
			return slices.Contains(names, e.Field())
		}), nil
	default:
		return form.Any(), nil
	}
}
