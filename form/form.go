package form

import (
	"log/slog"
	"maps"
)

type entry struct {
	trigger    Trigger
	processing Processing
}

// registry is the pipeline configuration: processing entries in
// registration order and disable triggers.
type registry struct {
	processing []entry
	disables   []Trigger
}

// Form is the evaluation engine. It owns the raw input, the pipeline and the
// state of the current evaluation cycle.
type Form struct {
	input       map[string]any
	base        registry
	preparation []Preparation
	// fields are the names declared with AddField, in declaration order.
	fields []string
	logger *slog.Logger

	// cycle is nil until an observation starts evaluating the current input.
	cycle *cycle
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		input:  map[string]any{},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// SetInput replaces the raw input and discards everything evaluated so far,
// starting a new evaluation cycle. The map is copied. While the form is
// being evaluated the input is left untouched and a *ConfigurationError is
// returned.
func (f *Form) SetInput(input map[string]any) error {
	if err := f.checkIdle("input", "replace the input"); err != nil {
		return err
	}

	f.input = maps.Clone(input)
	if f.input == nil {
		f.input = map[string]any{}
	}

	f.cycle = nil

	return nil
}

// Reset clears the input and the evaluation state, leaving the pipeline as
// it is.
func (f *Form) Reset() error {
	return f.SetInput(nil)
}

// Input returns a copy of the raw input.
func (f *Form) Input() map[string]any {
	return maps.Clone(f.input)
}

// AddPreparation registers a preparation. See ToPreparation for accepted
// shapes.
func (f *Form) AddPreparation(preparation any) error {
	p, err := ToPreparation(preparation)
	if err != nil {
		return err
	}

	if err := f.checkMutable("preparation"); err != nil {
		return err
	}

	f.preparation = append(f.preparation, p)
	f.cycle = nil

	return nil
}

// AddProcessing registers a processing step for the fields matched by
// trigger. When trigger is nil the processing value itself is used as the
// trigger if it implements Trigger, otherwise every field matches.
func (f *Form) AddProcessing(trigger, processing any) error {
	p, err := ToProcessing(processing)
	if err != nil {
		return err
	}

	t, err := defaultTrigger(trigger, processing)
	if err != nil {
		return err
	}

	return f.register(func(r *registry) {
		r.processing = append(r.processing, entry{trigger: t, processing: p})
	})
}

// AddValidation registers a validation as a processing step that never
// changes the value. Triggers default as in AddProcessing.
func (f *Form) AddValidation(trigger, validation any) error {
	v, err := ToValidation(validation)
	if err != nil {
		return err
	}

	t, err := defaultTrigger(trigger, validation)
	if err != nil {
		return err
	}

	p := NewValidationProcessing(v)

	return f.register(func(r *registry) {
		r.processing = append(r.processing, entry{trigger: t, processing: p})
	})
}

// Disable skips every field matched by trigger: no processing runs, the
// output value is nil and no message is recorded.
func (f *Form) Disable(trigger any) error {
	t, err := ToTrigger(trigger)
	if err != nil {
		return err
	}

	return f.register(func(r *registry) {
		r.disables = append(r.disables, t)
	})
}

func defaultTrigger(trigger, subject any) (Trigger, error) {
	if trigger != nil {
		return ToTrigger(trigger)
	}

	if t, ok := subject.(Trigger); ok {
		return t, nil
	}

	return Any(), nil
}

// register applies a pipeline change. Changes made by a preparation only
// last for the current cycle; changes made outside of a cycle apply to
// every later cycle and invalidate the memoized results.
func (f *Form) register(change func(r *registry)) error {
	if c := f.cycle; c != nil && c.preparing {
		change(&c.extra)
		return nil
	}

	if err := f.checkMutable("pipeline"); err != nil {
		return err
	}

	change(&f.base)
	f.cycle = nil

	return nil
}

func (f *Form) checkMutable(what string) error {
	return f.checkIdle(what, "change the pipeline")
}

// checkIdle rejects an action while preparations or processing steps of
// the current cycle are running.
func (f *Form) checkIdle(what, action string) error {
	if c := f.cycle; c != nil && (c.preparing || len(c.stack) > 0) {
		return &ConfigurationError{
			What:   what,
			Reason: "cannot " + action + " while the form is being evaluated",
		}
	}

	return nil
}
