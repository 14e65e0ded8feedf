package form

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/bnkr/simpliform/messages"
)

// cycle is the state of one evaluation of the current input.
type cycle struct {
	id string
	// extra holds pipeline changes made by preparations of this cycle.
	extra    registry
	state    map[string]FieldState
	output   map[string]any
	messages *messages.Messages
	// stack is the chain of fields being evaluated, outermost first.
	stack []string
	// contexts are the contexts of the steps currently running.
	contexts  []*Context
	preparing bool
	complete  bool
	err       error
}

// IsValid evaluates the form if needed and reports whether no message was
// recorded for any field.
func (f *Form) IsValid() (bool, error) {
	c, err := f.run()
	if err != nil {
		return false, err
	}

	return c.messages.IsValid(), nil
}

// Output evaluates the form if needed and returns the value of every field.
// Invalid and skipped fields map to nil.
func (f *Form) Output() (map[string]any, error) {
	c, err := f.run()
	if err != nil {
		return nil, err
	}

	return maps.Clone(c.output), nil
}

// Messages evaluates the form if needed and returns the messages of the
// current cycle. Messages added to the result count towards IsValid until
// the input changes.
func (f *Form) Messages() (*messages.Messages, error) {
	c, err := f.run()
	if err != nil {
		return nil, err
	}

	return c.messages, nil
}

// State returns the evaluation state of a field in the current cycle.
func (f *Form) State(field string) FieldState {
	if f.cycle == nil {
		return NotStarted
	}

	return f.cycle.state[field]
}

// Load evaluates a field and returns its value. Results are memoized for
// the cycle.
//
// From outside a processing step an invalid or skipped field yields nil.
// From inside one (directly or through Context.Get) it yields a
// *DependentFieldError that fails the reading field. Preparations cannot
// load fields.
func (f *Form) Load(field string) (any, error) {
	if c := f.cycle; c != nil && c.preparing {
		return nil, &ConfigurationError{
			What:   "load",
			Value:  field,
			Reason: "cannot load " + field + " before the preparations finish",
		}
	}

	c, err := f.begin()
	if err != nil {
		return nil, err
	}

	nested := len(c.stack) > 0
	chain := append(slices.Clone(c.stack), field)

	value, err := f.load(c, field)
	if err == nil && nested {
		if state := c.state[field]; state == Invalid || state == Skipped {
			err = &DependentFieldError{Chain: chain, State: state}
		}
	}

	if err != nil {
		if n := len(c.contexts); n > 0 {
			c.contexts[n-1].record(err)
		} else if IsFatal(err) {
			f.abort(c, err)
		}

		return nil, err
	}

	return value, nil
}

// begin returns the current cycle, starting it and running the
// preparations if needed.
func (f *Form) begin() (*cycle, error) {
	if f.cycle != nil {
		return f.cycle, f.cycle.err
	}

	c := &cycle{
		id:       uuid.NewString(),
		state:    make(map[string]FieldState),
		output:   make(map[string]any),
		messages: messages.New(),
	}
	f.cycle = c

	f.logger.Debug("evaluation cycle started", "cycle", c.id, "fields", len(f.input))

	c.preparing = true
	for i, p := range f.preparation {
		if err := p.Prepare(f); err != nil {
			c.preparing = false
			f.abort(c, fmt.Errorf("preparation %d: %w", i, err))

			return c, c.err
		}
	}
	c.preparing = false

	return c, nil
}

// run evaluates every field that is not yet resolved. It refuses to run
// from inside a preparation or a processing step.
func (f *Form) run() (*cycle, error) {
	if err := f.checkIdle("observation", "observe the form"); err != nil {
		return nil, err
	}

	c, err := f.begin()
	if err != nil {
		return nil, err
	}

	if c.complete {
		return c, nil
	}

	for _, field := range f.fieldNames() {
		if c.state[field].IsTerminal() {
			continue
		}

		if _, err := f.Load(field); err != nil {
			return nil, err
		}
	}

	c.complete = true
	f.logger.Debug("evaluation cycle finished", "cycle", c.id,
		"valid", c.messages.IsValid(), "messages", c.messages.Len())

	return c, nil
}

func (f *Form) abort(c *cycle, err error) {
	c.err = err
	c.complete = true
	f.logger.Error("evaluation cycle aborted", "cycle", c.id, "error", err)
}

// fieldNames returns the input keys in sorted order followed by declared
// fields that are missing from the input.
func (f *Form) fieldNames() []string {
	names := make([]string, 0, len(f.input)+len(f.fields))
	for name := range f.input {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range f.fields {
		if _, ok := f.input[name]; !ok {
			names = append(names, name)
		}
	}

	return names
}

// load runs the pipeline for one field, or returns its memoized value.
func (f *Form) load(c *cycle, field string) (any, error) {
	if c.state[field].IsTerminal() {
		return c.output[field], nil
	}

	if slices.Contains(c.stack, field) {
		return nil, &CircularDependencyError{Chain: append(slices.Clone(c.stack), field)}
	}

	c.stack = append(c.stack, field)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	c.state[field] = InProgress
	event := NewEvent(field)

	for _, t := range f.disables(c) {
		if t.Matches(event) {
			c.state[field] = Skipped
			c.output[field] = nil
			f.logger.Debug("field skipped", "cycle", c.id, "field", field)

			return nil, nil
		}
	}

	value := f.input[field]

	for _, e := range f.entries(c) {
		if !e.trigger.Matches(event) {
			continue
		}

		ctx := &Context{form: f, field: field, value: value}

		c.contexts = append(c.contexts, ctx)
		out, err := e.processing.Execute(ctx)
		c.contexts = c.contexts[:len(c.contexts)-1]

		errs, err := ctx.collect(out, err)
		if err != nil {
			return nil, err
		}

		if len(errs) > 0 {
			for _, msg := range errs {
				c.messages.Add(field, msg)
			}

			c.state[field] = Invalid
			c.output[field] = nil
			f.logger.Debug("field invalid", "cycle", c.id, "field", field, "messages", len(errs))

			return nil, nil
		}

		value = out.Value
	}

	c.state[field] = Done
	c.output[field] = value
	f.logger.Debug("field done", "cycle", c.id, "field", field)

	return value, nil
}

func (f *Form) entries(c *cycle) []entry {
	if len(c.extra.processing) == 0 {
		return f.base.processing
	}

	return append(slices.Clone(f.base.processing), c.extra.processing...)
}

func (f *Form) disables(c *cycle) []Trigger {
	if len(c.extra.disables) == 0 {
		return f.base.disables
	}

	return append(slices.Clone(f.base.disables), c.extra.disables...)
}
