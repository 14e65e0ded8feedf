package field

import (
	"fmt"

	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/convert"
)

// Integer converts its value to an int64, optionally bounded.
type Integer struct {
	Generic
	bounds[int64]
}

func NewInteger() *Integer {
	return &Integer{}
}

func (i *Integer) Processing() []form.Processing {
	return i.steps(func(c *form.Context) (any, error) {
		if c.Value() == nil {
			return nil, nil
		}

		n, err := convert.ToInt(c.Value())
		if err != nil {
			return nil, c.Fail(err)
		}

		if msg := i.check(n); msg != "" {
			return nil, c.Fail(msg)
		}

		return n, nil
	})
}

// Float converts its value to a float64, optionally bounded.
type Float struct {
	Generic
	bounds[float64]
}

func NewFloat() *Float {
	return &Float{}
}

func (f *Float) Processing() []form.Processing {
	return f.steps(func(c *form.Context) (any, error) {
		if c.Value() == nil {
			return nil, nil
		}

		n, err := convert.ToFloat(c.Value())
		if err != nil {
			return nil, c.Fail(err)
		}

		if msg := f.check(n); msg != "" {
			return nil, c.Fail(msg)
		}

		return n, nil
	})
}

// bounds holds the inclusive "min" and "max" options of a numeric field.
type bounds[T int64 | float64] struct {
	min, max *T
}

func (b *bounds[T]) SetMin(v T) error {
	if b.max != nil && v > *b.max {
		return fmt.Errorf("min %v is greater than max %v", v, *b.max)
	}

	b.min = &v

	return nil
}

func (b *bounds[T]) SetMax(v T) error {
	if b.min != nil && v < *b.min {
		return fmt.Errorf("max %v is less than min %v", v, *b.min)
	}

	b.max = &v

	return nil
}

// check returns the message for an out of range value, or "".
func (b *bounds[T]) check(v T) string {
	switch {
	case b.min != nil && b.max != nil:
		if !convert.Within(v, *b.min, *b.max) {
			return fmt.Sprintf("must be between %v and %v", *b.min, *b.max)
		}
	case b.min != nil:
		if v < *b.min {
			return fmt.Sprintf("must be at least %v", *b.min)
		}
	case b.max != nil:
		if v > *b.max {
			return fmt.Sprintf("must be at most %v", *b.max)
		}
	}

	return ""
}
