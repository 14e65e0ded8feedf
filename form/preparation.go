package form

// Preparation changes the form after the input is set and before any field
// is evaluated. It runs once per evaluation cycle.
type Preparation interface {
	Prepare(f *Form) error
}

// PreparationFunc adapts a function to the Preparation interface.
type PreparationFunc func(f *Form) error

func (p PreparationFunc) Prepare(f *Form) error {
	return p(f)
}

// ToPreparation normalizes a registration argument into a Preparation. It
// accepts a Preparation, a func(*Form) error or a func(*Form).
func ToPreparation(v any) (Preparation, error) {
	switch p := v.(type) {
	case Preparation:
		return p, nil
	case func(*Form) error:
		return PreparationFunc(p), nil
	case func(*Form):
		return PreparationFunc(func(f *Form) error {
			p(f)
			return nil
		}), nil
	default:
		return nil, badType("preparation", v)
	}
}
