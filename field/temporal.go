package field

import (
	"errors"

	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/convert"
)

// Duration converts "2h45m" style text, integer nanoseconds or float
// seconds to a time.Duration.
type Duration struct {
	Generic
}

func NewDuration() *Duration {
	return &Duration{}
}

func (d *Duration) Processing() []form.Processing {
	return d.steps(func(c *form.Context) (any, error) {
		if c.Value() == nil {
			return nil, nil
		}

		v, err := convert.ToDuration(c.Value())
		if err != nil {
			return nil, c.Fail(err)
		}

		return v, nil
	})
}

// Time converts text in its layout, RFC3339Nano by default, or integer
// Unix seconds to a time.Time.
type Time struct {
	Generic
	layout string
}

func NewTime() *Time {
	return &Time{}
}

// SetLayout sets the time.Parse layout used for text values.
func (t *Time) SetLayout(layout string) error {
	if layout == "" {
		return errors.New("layout must not be empty")
	}

	t.layout = layout

	return nil
}

func (t *Time) Processing() []form.Processing {
	return t.steps(func(c *form.Context) (any, error) {
		if c.Value() == nil {
			return nil, nil
		}

		v, err := convert.ToTime(c.Value(), t.layout)
		if err != nil {
			return nil, c.Fail(err)
		}

		return v, nil
	})
}
