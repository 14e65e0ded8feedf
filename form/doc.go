// Package form evaluates a flat mapping of named input values through an
// ordered pipeline of processing steps, producing transformed output and
// per-field messages.
//
// # Model
//
// A Form owns the raw input, an ordered list of (Trigger, Processing)
// pairs, a list of disable triggers and a list of preparations. Nothing is
// evaluated when the input is set. The first call to IsValid, Output or
// Messages starts an evaluation cycle:
//
//  1. Every preparation runs once, in registration order. Preparations may
//     inspect the input and change the form, typically by calling Disable.
//  2. Every field of the input (plus every field declared with AddField) is
//     loaded.
//
// Loading a field is lazy and memoized. A disabled field is skipped without
// running any processing. Otherwise the raw value is passed through each
// processing step whose trigger matches the field, in registration order,
// each step receiving the value produced by the previous one. The first
// step that reports a failure stops the walk and the field is invalid.
//
// A step may read another field through Context.Get, which loads that field
// first. Reading a field that is invalid or skipped fails the reading field
// too. Reading a field that is still being evaluated is a circular
// dependency and aborts the whole cycle.
//
// # Errors
//
// Data-level failures never escape the cycle; they are recorded in the
// message sink and reported through IsValid and Messages. Only structural
// errors are returned to the caller:
//   - *ConfigurationError: malformed registration input.
//   - *CircularDependencyError: a field depends on itself.
//
// # Example
//
//	f := form.New()
//	_ = f.AddProcessing("other", func(c *form.Context) (any, error) {
//	    n, err := strconv.Atoi(c.Value().(string))
//	    return n * 10, err
//	})
//	_ = f.AddValidation("whatever", func(_ any, c *form.Context) bool {
//	    other, _ := c.Get("other")
//	    return other == 100
//	})
//	f.SetInput(map[string]any{"other": "10", "whatever": "100"})
//	valid, err := f.IsValid() // true, nil
//
// Preparations and processing steps may not observe the form through
// IsValid, Output or Messages, nor replace its input; preparations may not
// load fields either. Those calls return a *ConfigurationError and change
// nothing.
//
// A Form is not safe for concurrent use. Independent forms share no state.
package form
