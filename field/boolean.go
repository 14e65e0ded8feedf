package field

import (
	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/convert"
)

// Boolean converts its value to true or false. Recognised words and the
// numbers 0 and 1 map directly; anything else is judged by emptiness,
// unless the field is strict. A missing value is false.
type Boolean struct {
	Generic
	strict bool
}

func NewBoolean() *Boolean {
	return &Boolean{}
}

// SetStrict makes unrecognised values fail the field.
func (b *Boolean) SetStrict(strict bool) {
	b.strict = strict
}

func (b *Boolean) Processing() []form.Processing {
	return b.steps(b.toBool)
}

func (b *Boolean) toBool(c *form.Context) (any, error) {
	if c.Value() == nil {
		return false, nil
	}

	v, err := convert.ToBool(c.Value())
	if err == nil {
		return v, nil
	}

	if b.strict {
		return nil, c.Fail(err)
	}

	return convert.Truthy(c.Value()), nil
}
