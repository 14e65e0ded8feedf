package field

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/convert"
)

// MissingMessage is reported by a required field whose value is empty.
const MissingMessage = "data missing or empty"

var rules = validator.New(validator.WithRequiredStructEnabled())

// Generic is a field built up from processing steps.
type Generic struct {
	required bool
	rules    string
	custom   []form.Processing
}

func NewGeneric() *Generic {
	return &Generic{}
}

// SetRequired makes an empty value (see convert.IsEmpty) fail the field.
func (g *Generic) SetRequired(required bool) {
	g.required = required
}

// SetRules sets a validator tag string, such as "email" or "min=3,max=10",
// checked against the converted value.
func (g *Generic) SetRules(tag string) (err error) {
	// validator panics on tags it cannot parse
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bad rules %q: %v", tag, r)
		}
	}()

	// only parsing matters here, so the verdict on "" is discarded
	_ = rules.Var("", tag)
	g.rules = tag

	return nil
}

// AddProcessing appends a custom step run after the built-in ones. See
// form.ToProcessing for the accepted shapes.
func (g *Generic) AddProcessing(processing any) error {
	p, err := form.ToProcessing(processing)
	if err != nil {
		return err
	}

	g.custom = append(g.custom, p)

	return nil
}

func (g *Generic) Processing() []form.Processing {
	return g.steps(nil)
}

func (g *Generic) steps(conversion form.ProcessingFunc) []form.Processing {
	steps := []form.Processing{form.ProcessingFunc(g.checkRequired)}

	if conversion != nil {
		steps = append(steps, conversion)
	}

	steps = append(steps, ruleProcessing{g})

	return append(steps, g.custom...)
}

func (g *Generic) checkRequired(c *form.Context) (any, error) {
	if g.required && convert.IsEmpty(c.Value()) {
		return nil, c.Fail(MissingMessage)
	}

	return c.Value(), nil
}

type ruleProcessing struct {
	g *Generic
}

// Execute reports one message per failed rule. A missing value of an
// optional field is not checked.
func (p ruleProcessing) Execute(c *form.Context) (form.Outcome, error) {
	out := form.Outcome{Value: c.Value()}
	if p.g.rules == "" || (c.Value() == nil && !p.g.required) {
		return out, nil
	}

	err := rules.Var(c.Value(), p.g.rules)
	if err == nil {
		return out, nil
	}

	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return out, c.Fail(err)
	}

	for _, fe := range failed {
		msg := "failed rule " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}

		out.Errors = append(out.Errors, msg)
	}

	return out, nil
}
